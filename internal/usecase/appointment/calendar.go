package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type CalendarDay struct {
	Date         string               `json:"data"`
	Day          int                  `json:"dia"`
	Count        int                  `json:"quantidade"`
	Appointments []models.Appointment `json:"agendamentos"`
}

type GetCalendarMonth struct {
	store *store.Store
}

func NewGetCalendarMonth(st *store.Store) *GetCalendarMonth {
	return &GetCalendarMonth{store: st}
}

// Execute agrega os agendamentos de um mês por dia, para a grade do
// calendário.
func (uc *GetCalendarMonth) Execute(
	ctx context.Context,
	year int,
	month time.Month,
	loc *time.Location,
) []CalendarDay {

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)
	daysInMonth := next.AddDate(0, 0, -1).Day()

	byDay := make(map[string][]models.Appointment)
	for _, ap := range uc.store.GetAppointments(ctx) {
		if ap.StartTime.Before(first) || !ap.StartTime.Before(next) {
			continue
		}
		key := ap.StartTime.Format("2006-01-02")
		byDay[key] = append(byDay[key], ap)
	}

	out := make([]CalendarDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		key := date.Format("2006-01-02")

		out = append(out, CalendarDay{
			Date:         key,
			Day:          day,
			Count:        len(byDay[key]),
			Appointments: byDay[key],
		})
	}

	return out
}
