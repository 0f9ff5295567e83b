package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type GetUpcomingAppointments struct {
	store *store.Store
	now   func() time.Time
}

func NewGetUpcomingAppointments(st *store.Store) *GetUpcomingAppointments {
	return &GetUpcomingAppointments{store: st, now: time.Now}
}

// Execute devolve os agendamentos não cancelados com início em
// [agora, agora+dias), ordenados por início. É a entrada do disparo
// de lembretes.
func (uc *GetUpcomingAppointments) Execute(
	ctx context.Context,
	daysAhead int,
) []models.Appointment {

	now := uc.now()
	limit := now.AddDate(0, 0, daysAhead)

	out := []models.Appointment{}
	for _, ap := range uc.store.GetAppointments(ctx) {
		if domain.Status(ap.Status) == domain.StatusCanceled {
			continue
		}
		if ap.StartTime.Before(now) || !ap.StartTime.Before(limit) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out
}
