package models

import "time"

// Item de serviço selecionado no agendamento. O preço é um snapshot do
// momento da criação: mudanças posteriores de tabela não afetam o histórico.
type ServiceSelection struct {
	ServiceID    string  `json:"serviceId"`
	Name         string  `json:"nome"`
	AppliedPrice float64 `json:"precoAplicado"`
}

type Payment struct {
	Status    string  `json:"status,omitempty"` // pago, pendente, previsto, parcial
	Method    string  `json:"metodo,omitempty"`
	AmountDue float64 `json:"valorTotal,omitempty"`
	Paid      float64 `json:"valorPago,omitempty"`
	Discount  float64 `json:"desconto,omitempty"`
}

type Appointment struct {
	ID string `json:"id"`

	ClientID   string `json:"clienteId"`
	ClientName string `json:"clienteNome,omitempty"`

	PetID   string `json:"petId,omitempty"`
	PetName string `json:"petNome,omitempty"`

	Services []ServiceSelection `json:"servicosSelecionados"`

	StartTime       time.Time `json:"dataHora"`
	DurationMinutes int       `json:"duracaoMinutos"`

	ProfessionalID   string `json:"profissionalId,omitempty"`
	ProfessionalName string `json:"profissionalNome,omitempty"`

	Status string `json:"status"`

	Payment Payment `json:"pagamento,omitempty"`

	Notes string `json:"observacoes,omitempty"`

	CanceledAt  *time.Time `json:"canceladoEm,omitempty"`
	CompletedAt *time.Time `json:"concluidoEm,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) GetID() string   { return a.ID }
func (a *Appointment) SetID(id string) { a.ID = id }

func (a *Appointment) StampTimes(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

// EndTime fecha o intervalo semiaberto [dataHora, dataHora+duração)
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
