package appointment

import (
	"context"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	"github.com/petcarebr/petshop-scheduler/internal/timezone"
)

type Stats struct {
	Total                   int            `json:"total"`
	ByStatus                map[string]int `json:"porStatus"`
	ConfirmationRatePercent float64        `json:"taxaConfirmacao"`
}

type GetAppointmentStats struct {
	store *store.Store
	now   func() time.Time
}

func NewGetAppointmentStats(st *store.Store) *GetAppointmentStats {
	return &GetAppointmentStats{store: st, now: time.Now}
}

// Execute conta agendamentos por status na janela do período:
// today = dia corrente, week = 7 dias corridos até agora,
// month = mês-calendário, year = ano-calendário. Janela [início, fim).
func (uc *GetAppointmentStats) Execute(
	ctx context.Context,
	period string,
) (*Stats, error) {

	now := uc.now()

	var start, end time.Time
	switch period {
	case "today":
		start = timezone.StartOfDay(now)
		end = start.AddDate(0, 0, 1)
	case "week":
		start = now.AddDate(0, 0, -7)
		end = now
	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0)
	case "year":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(1, 0, 0)
	default:
		return nil, apperr.Validation("período desconhecido: " + period)
	}

	stats := &Stats{
		ByStatus: map[string]int{},
	}

	for _, ap := range uc.store.GetAppointments(ctx) {
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		stats.Total++
		stats.ByStatus[ap.Status]++
	}

	// taxa de confirmação com guarda de divisão por zero
	if stats.Total > 0 {
		confirmed := stats.ByStatus[string(domain.StatusConfirmed)]
		stats.ConfirmationRatePercent = float64(confirmed) / float64(stats.Total) * 100
	}

	return stats, nil
}
