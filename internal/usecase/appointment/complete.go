package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type StartAppointment struct {
	store *store.Store
}

func NewStartAppointment(st *store.Store) *StartAppointment {
	return &StartAppointment{store: st}
}

func (uc *StartAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap := uc.store.GetAppointment(ctx, appointmentID)
	if ap == nil {
		return nil, apperr.NotFound("agendamento", appointmentID)
	}

	if err := domain.Start(ap); err != nil {
		return nil, err
	}

	return uc.store.SaveAppointment(ctx, ap)
}

type CompleteAppointment struct {
	store *store.Store
	now   func() time.Time
}

func NewCompleteAppointment(st *store.Store) *CompleteAppointment {
	return &CompleteAppointment{store: st, now: time.Now}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap := uc.store.GetAppointment(ctx, appointmentID)
	if ap == nil {
		return nil, apperr.NotFound("agendamento", appointmentID)
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	return uc.store.SaveAppointment(ctx, ap)
}
