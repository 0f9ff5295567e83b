package models

import "time"

type Vaccine struct {
	Name     string `json:"nome"`
	Type     string `json:"tipo,omitempty"`
	Date     string `json:"data"`
	NextDose string `json:"proximaDose,omitempty"`
}

type Deworming struct {
	Product string `json:"produto"`
	Date    string `json:"data"`
}

type Pet struct {
	ID       string `json:"id"`
	ClientID string `json:"clienteId"`

	Name      string  `json:"nome"`
	Species   string  `json:"especie"`
	Breed     string  `json:"raca,omitempty"`
	Sex       string  `json:"sexo,omitempty"`
	BirthDate string  `json:"dataNascimento,omitempty"`
	WeightKg  float64 `json:"pesoAtualKg,omitempty"`
	Coat      string  `json:"pelagem,omitempty"`
	Microchip string  `json:"microchipOpcional,omitempty"`

	Vaccines   []Vaccine   `json:"vacinas,omitempty"`
	Dewormings []Deworming `json:"vermifugacao,omitempty"`

	Allergies          string `json:"alergiasAtencoes,omitempty"`
	Temperament        string `json:"temperamento,omitempty"`
	PhotoURL           string `json:"fotoUrl,omitempty"`
	GroomingNotes      string `json:"observacoesGrooming,omitempty"`
	HealthRestrictions string `json:"restricoesSaude,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Pet) GetID() string   { return p.ID }
func (p *Pet) SetID(id string) { p.ID = id }

func (p *Pet) StampTimes(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
