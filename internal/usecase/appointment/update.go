package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

// Patch de atualização: nil significa "não alterar".
type UpdateAppointmentInput struct {
	ID string

	StartTime      *time.Time
	ProfessionalID *string
	Services       []models.ServiceSelection
	Status         *string
	Notes          *string
	Payment        *models.Payment
}

type UpdateAppointment struct {
	store *store.Store
	locks *CalendarLocks
	now   func() time.Time
}

func NewUpdateAppointment(st *store.Store, locks *CalendarLocks) *UpdateAppointment {
	return &UpdateAppointment{
		store: st,
		locks: locks,
		now:   time.Now,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap := uc.store.GetAppointment(ctx, in.ID)
	if ap == nil {
		return nil, apperr.NotFound("agendamento", in.ID)
	}

	// --------------------------------------------------
	// Transição de status validada antes de qualquer escrita
	// --------------------------------------------------
	if in.Status != nil {
		if err := domain.CanTransition(domain.Status(ap.Status), domain.Status(*in.Status)); err != nil {
			return nil, err
		}
	}

	// Patch de pagamento sem status herda o status vigente antes de
	// validar: o chamador pode mandar só valor/método.
	if in.Payment != nil {
		if in.Payment.Status == "" {
			in.Payment.Status = ap.Payment.Status
			if in.Payment.Status == "" {
				in.Payment.Status = string(domain.InitialPaymentStatus())
			}
		}
		from := domain.PaymentStatus(ap.Payment.Status)
		to := domain.PaymentStatus(in.Payment.Status)
		if err := domain.CanTransitionPayment(from, to); err != nil {
			return nil, err
		}
	}

	newStart := ap.StartTime
	if in.StartTime != nil {
		newStart = *in.StartTime
	}

	newProfessional := ap.ProfessionalID
	if in.ProfessionalID != nil {
		newProfessional = *in.ProfessionalID
	}

	// Troca de serviços descarta a duração antiga e recalcula
	newServices := ap.Services
	newDuration := ap.DurationMinutes
	if in.Services != nil {
		newServices = in.Services
		newDuration = domain.TotalDuration(in.Services, func(id string) *models.Service {
			return uc.store.GetService(ctx, id)
		})
	}

	// --------------------------------------------------
	// Reagendamento: reexecuta a checagem de conflito com os valores
	// do patch, excluindo o próprio registro da comparação
	// --------------------------------------------------
	timeChanged := in.StartTime != nil || in.ProfessionalID != nil || in.Services != nil
	if timeChanged {
		uc.store.GetAll(ctx, store.Appointments)

		unlock := uc.locks.Lock(newProfessional)
		defer unlock()

		existing := uc.store.GetAppointmentsByProfessional(newProfessional)
		if conflict := domain.FindConflict(existing, newStart, newDuration, ap.ID); conflict != nil {
			return nil, apperr.Conflict(conflict.ID)
		}
	}

	if in.ProfessionalID != nil {
		professional := uc.store.GetProfessional(ctx, newProfessional)
		if professional == nil {
			return nil, apperr.NotFound("profissional", newProfessional)
		}
		ap.ProfessionalID = newProfessional
		ap.ProfessionalName = professional.Name
	}

	ap.StartTime = newStart
	ap.Services = newServices
	ap.DurationMinutes = newDuration

	if in.Status != nil {
		ap.Status = *in.Status
		now := uc.now()
		switch domain.Status(*in.Status) {
		case domain.StatusCanceled:
			ap.CanceledAt = &now
		case domain.StatusCompleted:
			ap.CompletedAt = &now
		}
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.Payment != nil {
		ap.Payment = *in.Payment
	}
	if in.Services != nil {
		ap.Payment.AmountDue = domain.Total(newServices, ap.Payment.Discount)
	}

	return uc.store.SaveAppointment(ctx, ap)
}
