package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type CancelAppointment struct {
	store *store.Store
	now   func() time.Time
}

func NewCancelAppointment(st *store.Store) *CancelAppointment {
	return &CancelAppointment{store: st, now: time.Now}
}

// Cancelamento é mudança de status, não exclusão física: o registro
// permanece, mas o intervalo deixa de participar de conflitos.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	reason string,
) (*models.Appointment, error) {

	ap := uc.store.GetAppointment(ctx, appointmentID)
	if ap == nil {
		return nil, apperr.NotFound("agendamento", appointmentID)
	}

	if err := domain.Cancel(ap, reason, uc.now()); err != nil {
		return nil, err
	}

	return uc.store.SaveAppointment(ctx, ap)
}
