package appointment

import "github.com/petcarebr/petshop-scheduler/internal/apperr"

// ===============================
// Status do agendamento
// ===============================
//
// Valores no vocabulário dos documentos já sincronizados. A máquina é
// agendado → confirmado → em_andamento → concluido, com cancelado
// alcançável de qualquer estado não terminal. Estados terminais não
// admitem transição de saída.

type Status string

const (
	StatusScheduled  Status = "agendado"
	StatusConfirmed  Status = "confirmado"
	StatusInProgress Status = "em_andamento"
	StatusCompleted  Status = "concluido"
	StatusCanceled   Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func InitialStatus() Status {
	return StatusScheduled
}

// next mapeia o avanço linear permitido a partir de cada estado.
var next = map[Status]Status{
	StatusScheduled:  StatusConfirmed,
	StatusConfirmed:  StatusInProgress,
	StatusInProgress: StatusCompleted,
}

// CanTransition valida uma troca de status. Status desconhecido é erro
// de validação explícito, nunca mapeado para um valor padrão.
func CanTransition(from, to Status) error {
	if !from.Valid() {
		return apperr.Validation("status atual desconhecido: " + string(from))
	}
	if !to.Valid() {
		return apperr.Validation("status desconhecido: " + string(to))
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return apperr.Validation("agendamento " + string(from) + " não admite mudança de status")
	}
	if to == StatusCanceled {
		return nil
	}

	// avanço de múltiplos passos é permitido (ex.: confirmado → concluido)
	for cur := from; ; {
		n, ok := next[cur]
		if !ok {
			return apperr.Validation("transição inválida: " + string(from) + " → " + string(to))
		}
		if n == to {
			return nil
		}
		cur = n
	}
}
