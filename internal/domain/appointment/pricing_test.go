package appointment

import (
	"testing"

	"github.com/petcarebr/petshop-scheduler/internal/models"
)

func TestTotalDuration(t *testing.T) {
	catalog := map[string]*models.Service{
		"srv_banho": {ID: "srv_banho", DurationMinutes: 45},
		"srv_tosa":  {ID: "srv_tosa", DurationMinutes: 90},
		"srv_zero":  {ID: "srv_zero", DurationMinutes: 0},
	}
	lookup := func(id string) *models.Service { return catalog[id] }

	tests := []struct {
		name       string
		selections []models.ServiceSelection
		want       int
	}{
		{"soma das durações", []models.ServiceSelection{
			{ServiceID: "srv_banho"}, {ServiceID: "srv_tosa"},
		}, 135},
		{"serviço removido do catálogo usa padrão", []models.ServiceSelection{
			{ServiceID: "srv_fantasma"},
		}, DefaultServiceDuration},
		{"duração zero usa padrão", []models.ServiceSelection{
			{ServiceID: "srv_zero"},
		}, DefaultServiceDuration},
		{"misto", []models.ServiceSelection{
			{ServiceID: "srv_banho"}, {ServiceID: "srv_fantasma"},
		}, 105},
		{"vazio", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalDuration(tt.selections, lookup); got != tt.want {
				t.Errorf("TotalDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolvePrice(t *testing.T) {
	multipliers := map[string]float64{"P": 1.0, "M": 1.2, "G": 1.5}

	withVariations := &models.Service{
		ID:        "srv_tosa",
		BasePrice: 80,
		PriceVariations: []models.PriceVariation{
			{SizeCode: "G", Price: 120},
			{WeightMinKg: 0, WeightMaxKg: 10, Price: 60},
		},
	}
	plain := &models.Service{ID: "srv_banho", BasePrice: 50}

	tests := []struct {
		name     string
		svc      *models.Service
		sizeCode string
		weightKg float64
		want     float64
	}{
		{"variação por porte vence", withVariations, "G", 30, 120},
		{"variação por faixa de peso", withVariations, "M", 8, 60},
		{"sem variação aplica multiplicador", plain, "M", 15, 60},
		{"porte grande multiplica", plain, "G", 30, 75},
		{"porte desconhecido cai no preço base", plain, "XXXG", 30, 50},
		{"sem porte nem peso", plain, "", 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePrice(tt.svc, tt.sizeCode, tt.weightKg, multipliers); got != tt.want {
				t.Errorf("ResolvePrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	selections := []models.ServiceSelection{
		{ServiceID: "srv_1", AppliedPrice: 50},
		{ServiceID: "srv_2", AppliedPrice: 80},
	}

	tests := []struct {
		name     string
		discount float64
		want     float64
	}{
		{"sem desconto", 0, 130},
		{"desconto parcial", 30, 100},
		{"desconto igual ao subtotal", 130, 0},
		{"desconto maior trunca em zero", 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(selections, tt.discount); got != tt.want {
				t.Errorf("Total(desconto=%v) = %v, want %v", tt.discount, got, tt.want)
			}
		})
	}
}
