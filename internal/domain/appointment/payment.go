package appointment

import "github.com/petcarebr/petshop-scheduler/internal/apperr"

// ===============================
// Status do pagamento
// ===============================
//
// Mesmo vocabulário dos documentos sincronizados. Ao contrário do
// status do agendamento não há ordem obrigatória entre os estados
// abertos: um pagamento previsto pode virar parcial ou pago direto.
// Só pago é terminal.

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pendente"
	PaymentForecast PaymentStatus = "previsto"
	PaymentPartial  PaymentStatus = "parcial"
	PaymentPaid     PaymentStatus = "pago"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentForecast, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

func (p PaymentStatus) Terminal() bool {
	return p == PaymentPaid
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}

// CanTransitionPayment valida uma troca de status de pagamento. Origem
// vazia vale como pendente: agendamentos antigos foram gravados sem o
// campo. Destino desconhecido é erro de validação explícito.
func CanTransitionPayment(from, to PaymentStatus) error {
	if from == "" {
		from = PaymentPending
	}
	if !from.Valid() {
		return apperr.Validation("status de pagamento atual desconhecido: " + string(from))
	}
	if !to.Valid() {
		return apperr.Validation("status de pagamento desconhecido: " + string(to))
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return apperr.Validation("pagamento " + string(from) + " não admite mudança de status")
	}
	return nil
}
