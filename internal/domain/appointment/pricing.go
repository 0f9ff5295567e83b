package appointment

import "github.com/petcarebr/petshop-scheduler/internal/models"

// DefaultServiceDuration cobre serviços sem duração configurada ou cujo
// cadastro não resolve mais.
const DefaultServiceDuration = 60

// TotalDuration soma a duração configurada de cada serviço selecionado.
// O lookup pode devolver nil (serviço removido do catálogo); nesse caso
// o item contribui com a duração padrão.
func TotalDuration(
	selections []models.ServiceSelection,
	lookup func(serviceID string) *models.Service,
) int {
	total := 0
	for _, sel := range selections {
		svc := lookup(sel.ServiceID)
		if svc == nil || svc.DurationMinutes <= 0 {
			total += DefaultServiceDuration
			continue
		}
		total += svc.DurationMinutes
	}
	return total
}

// ResolvePrice resolve o preço de um serviço para o porte/peso do pet.
// Variação explícita do serviço vence; sem variação, o preço base recebe
// o multiplicador de porte configurado na loja.
func ResolvePrice(
	svc *models.Service,
	sizeCode string,
	weightKg float64,
	multipliers map[string]float64,
) float64 {
	for _, v := range svc.PriceVariations {
		if v.SizeCode != "" && v.SizeCode == sizeCode {
			return v.Price
		}
		if v.SizeCode == "" && weightKg > 0 &&
			weightKg >= v.WeightMinKg && weightKg < v.WeightMaxKg {
			return v.Price
		}
	}

	if m, ok := multipliers[sizeCode]; ok && m > 0 {
		return svc.BasePrice * m
	}
	return svc.BasePrice
}

// Total calcula o valor do agendamento: soma dos preços aplicados menos
// o desconto fixo, nunca negativo. Um desconto maior que o subtotal é
// truncado em zero; o valor cru do desconto permanece no registro.
func Total(selections []models.ServiceSelection, discount float64) float64 {
	subtotal := 0.0
	for _, sel := range selections {
		subtotal += sel.AppliedPrice
	}

	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
