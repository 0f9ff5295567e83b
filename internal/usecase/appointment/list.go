package appointment

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

// Filtros combináveis; campo zero = sem filtro.
type ListFilters struct {
	Status         string
	ClientID       string
	PetID          string
	ProfessionalID string

	// Intervalo [From, To)
	From time.Time
	To   time.Time

	// Dia específico no formato 2006-01-02 (na localização do registro)
	Date string
}

type ListAppointments struct {
	store *store.Store
}

func NewListAppointments(st *store.Store) *ListAppointments {
	return &ListAppointments{store: st}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filters ListFilters,
) []models.Appointment {

	appointments := uc.store.GetAppointments(ctx)

	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if filters.Status != "" && ap.Status != filters.Status {
			continue
		}
		if filters.ClientID != "" && ap.ClientID != filters.ClientID {
			continue
		}
		if filters.PetID != "" && ap.PetID != filters.PetID {
			continue
		}
		if filters.ProfessionalID != "" && ap.ProfessionalID != filters.ProfessionalID {
			continue
		}
		if !filters.From.IsZero() && ap.StartTime.Before(filters.From) {
			continue
		}
		if !filters.To.IsZero() && !ap.StartTime.Before(filters.To) {
			continue
		}
		if filters.Date != "" && !strings.HasPrefix(ap.StartTime.Format("2006-01-02"), filters.Date) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out
}
