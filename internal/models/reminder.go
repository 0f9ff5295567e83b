package models

import "time"

// Lembrete de renovação de vacina. Ativo até ser resolvido ou desativado;
// NotifyFrom = TargetDate - dias de antecedência.
type Reminder struct {
	ID string `json:"id"`

	PetID    string `json:"petId"`
	ClientID string `json:"clienteId"`

	VaccineName string `json:"vacinaNome"`
	VaccineType string `json:"vacinaTipo,omitempty"`

	TargetDate time.Time `json:"dataAlvo"`
	NotifyFrom time.Time `json:"notificarAPartirDe"`

	Active     bool       `json:"ativo"`
	ResolvedAt *time.Time `json:"resolvidoEm,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Reminder) GetID() string   { return r.ID }
func (r *Reminder) SetID(id string) { r.ID = id }

func (r *Reminder) StampTimes(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}
