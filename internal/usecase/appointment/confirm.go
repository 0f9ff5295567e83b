package appointment

import (
	"context"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/notify"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type ConfirmAppointment struct {
	store    *store.Store
	notifier *notify.Dispatcher
}

func NewConfirmAppointment(st *store.Store, notifier *notify.Dispatcher) *ConfirmAppointment {
	return &ConfirmAppointment{store: st, notifier: notifier}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap := uc.store.GetAppointment(ctx, appointmentID)
	if ap == nil {
		return nil, apperr.NotFound("agendamento", appointmentID)
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	saved, err := uc.store.SaveAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}

	uc.dispatchConfirmation(ctx, saved)
	return saved, nil
}

// Mensagem de confirmação via template da loja; o disparo é
// fire-and-forget e nunca falha a confirmação em si.
func (uc *ConfirmAppointment) dispatchConfirmation(ctx context.Context, ap *models.Appointment) {
	settings := uc.store.GetSettings(ctx)
	client := uc.store.GetClient(ctx, ap.ClientID)
	if settings == nil || client == nil {
		return
	}

	msg := notify.RenderTemplate(settings.WhatsAppMessages.AppointmentConfirmation, map[string]string{
		"date": ap.StartTime.Format("02/01/2006"),
		"time": ap.StartTime.Format("15:04"),
	})

	uc.notifier.Dispatch(notify.Event{
		Kind:        "appointment_confirmation",
		ClientName:  client.FullName,
		Phone:       client.WhatsApp,
		Message:     msg,
		ReferenceID: ap.ID,
	})
}
