package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/metrics"
	"github.com/petcarebr/petshop-scheduler/internal/notify"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type CheckReminders struct {
	store    *store.Store
	upcoming *GetUpcomingAppointments
	notifier *notify.Dispatcher
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewCheckReminders(
	st *store.Store,
	upcoming *GetUpcomingAppointments,
	notifier *notify.Dispatcher,
	m *metrics.Metrics,
) *CheckReminders {
	return &CheckReminders{
		store:    st,
		upcoming: upcoming,
		notifier: notifier,
		metrics:  m,
		now:      time.Now,
	}
}

// Execute é a varredura manual de lembretes: agendamentos nas janelas
// de 24h e 2h geram uma notificação cada. Devolve quantos lembretes
// foram enfileirados.
func (uc *CheckReminders) Execute(ctx context.Context) int {
	settings := uc.store.GetSettings(ctx)
	if settings == nil {
		return 0
	}

	now := uc.now()
	dispatched := 0

	for _, ap := range uc.upcoming.Execute(ctx, 1) {
		hoursUntil := ap.StartTime.Sub(now).Hours()
		if hoursUntil <= 0 {
			continue
		}

		client := uc.store.GetClient(ctx, ap.ClientID)
		if client == nil {
			continue
		}

		var msg string
		switch {
		case hoursUntil <= 2:
			msg = "Lembrete: Seu pet tem agendamento hoje às " + ap.StartTime.Format("15:04") + "."
		case hoursUntil <= 24:
			msg = notify.RenderTemplate(settings.WhatsAppMessages.AppointmentReminder, map[string]string{
				"date": ap.StartTime.Format("02/01/2006"),
				"time": ap.StartTime.Format("15:04"),
			})
		default:
			continue
		}

		uc.notifier.Dispatch(notify.Event{
			Kind:        "appointment_reminder",
			ClientName:  client.FullName,
			Phone:       client.WhatsApp,
			Message:     msg,
			ReferenceID: ap.ID,
		})
		uc.metrics.CountReminderDispatched()
		dispatched++
	}

	return dispatched
}
