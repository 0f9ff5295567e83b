package models

import "time"

type WhatsAppMessages struct {
	AppointmentConfirmation string `json:"appointmentConfirmation"`
	AppointmentReminder     string `json:"appointmentReminder"`
	ServiceCompleted        string `json:"serviceCompleted"`
	PaymentReminder         string `json:"paymentReminder"`
}

type PriceRules struct {
	SizeMultipliers map[string]float64 `json:"sizeMultipliers"`
}

// Configuração única da loja (documento singleton, id fixo)
type Settings struct {
	ID string `json:"id"`

	BusinessName    string  `json:"businessName"`
	BusinessPhone   string  `json:"businessPhone,omitempty"`
	BusinessEmail   string  `json:"businessEmail,omitempty"`
	BusinessAddress Address `json:"businessAddress"`

	DefaultPetSize   string           `json:"defaultPetSize"`
	WhatsAppMessages WhatsAppMessages `json:"whatsappMessages"`
	PriceRules       PriceRules       `json:"priceRules"`

	FirstRun bool `json:"firstRun"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const SettingsID = "settings_001"

func (s *Settings) GetID() string   { return s.ID }
func (s *Settings) SetID(id string) { s.ID = id }

func (s *Settings) StampTimes(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
