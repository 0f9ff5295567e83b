package models

import "time"

type Professional struct {
	ID string `json:"id"`

	Name      string `json:"nome"`
	Role      string `json:"funcao,omitempty"`
	Phone     string `json:"telefone,omitempty"`
	Active    bool   `json:"ativo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Professional) GetID() string   { return p.ID }
func (p *Professional) SetID(id string) { p.ID = id }

func (p *Professional) StampTimes(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
