package models

import "time"

// Variação de preço por porte (P, M, G, XXG) ou faixa de peso
type PriceVariation struct {
	SizeCode    string  `json:"porte,omitempty"`
	WeightMinKg float64 `json:"pesoMinKg,omitempty"`
	WeightMaxKg float64 `json:"pesoMaxKg,omitempty"`
	Price       float64 `json:"preco"`
}

// Serviço ofertado (banho, tosa, consulta dermatológica, ...)
type Service struct {
	ID string `json:"id"`

	Name        string  `json:"nome"`
	Description string  `json:"descricao,omitempty"`
	BasePrice   float64 `json:"precoBase"`
	Cost        float64 `json:"custo,omitempty"`

	// Zero significa "não configurada"; o agendamento assume 60 min
	DurationMinutes int `json:"duracaoMinutos,omitempty"`

	PriceVariations []PriceVariation `json:"variacoesPreco,omitempty"`

	Category string `json:"categoria,omitempty"`
	Active   bool   `json:"ativo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) GetID() string   { return s.ID }
func (s *Service) SetID(id string) { s.ID = id }

func (s *Service) StampTimes(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

// PriceFor resolve o preço para um porte, caindo no preço base quando
// não existe variação cadastrada.
func (s *Service) PriceFor(sizeCode string, weightKg float64) float64 {
	for _, v := range s.PriceVariations {
		if v.SizeCode != "" && v.SizeCode == sizeCode {
			return v.Price
		}
		if v.SizeCode == "" && weightKg > 0 &&
			weightKg >= v.WeightMinKg && weightKg < v.WeightMaxKg {
			return v.Price
		}
	}
	return s.BasePrice
}
