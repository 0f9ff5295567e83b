package models

import "time"

// Raça de referência para cadastro de pets
type Breed struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Species string `json:"especie"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Breed) GetID() string   { return b.ID }
func (b *Breed) SetID(id string) { b.ID = id }

func (b *Breed) StampTimes(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// Porte (faixa de peso) usado na variação de preço dos serviços
type SizeBand struct {
	ID        string  `json:"id"`
	Name      string  `json:"nome"`
	Code      string  `json:"codigo"`
	WeightMin float64 `json:"pesoMin"`
	WeightMax float64 `json:"pesoMax"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SizeBand) GetID() string   { return s.ID }
func (s *SizeBand) SetID(id string) { s.ID = id }

func (s *SizeBand) StampTimes(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
