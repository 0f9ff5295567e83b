package appointment

import (
	"context"
	"time"

	domain "github.com/petcarebr/petshop-scheduler/internal/domain/appointment"
	"github.com/petcarebr/petshop-scheduler/internal/store"
	"github.com/petcarebr/petshop-scheduler/internal/timezone"
)

type TimeSlot struct {
	StartTime time.Time `json:"dataHora"`
	Label     string    `json:"horario"`
}

// Janela de funcionamento da agenda
type BusinessHours struct {
	StartHour   int
	EndHour     int
	GridMinutes int
}

func DefaultBusinessHours() BusinessHours {
	return BusinessHours{StartHour: 8, EndHour: 18, GridMinutes: 30}
}

type GetAvailability struct {
	store *store.Store
	hours BusinessHours
}

func NewGetAvailability(st *store.Store, hours BusinessHours) *GetAvailability {
	if hours.GridMinutes <= 0 {
		hours = DefaultBusinessHours()
	}
	return &GetAvailability{store: st, hours: hours}
}

// Execute enumera os horários livres de um profissional em uma data:
// grade fixa dentro do expediente, um candidato da duração pedida por
// ponto da grade, testado contra os agendamentos do dia com a mesma
// regra de sobreposição da criação. Força bruta — o volume por
// profissional por dia é de um dígito, às vezes dois.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	professionalID string,
	date time.Time,
	durationMinutes int,
) []TimeSlot {

	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultServiceDuration
	}

	// atualiza o snapshot local antes de filtrar por dia
	uc.store.GetAll(ctx, store.Appointments)

	dayStart := timezone.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments := []struct{ start, end time.Time }{}
	for _, ap := range uc.store.GetAppointmentsByProfessional(professionalID) {
		if domain.Status(ap.Status) == domain.StatusCanceled {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		appointments = append(appointments, struct{ start, end time.Time }{ap.StartTime, ap.EndTime()})
	}

	slotDuration := time.Duration(durationMinutes) * time.Minute
	grid := time.Duration(uc.hours.GridMinutes) * time.Minute

	windowStart := dayStart.Add(time.Duration(uc.hours.StartHour) * time.Hour)
	windowEnd := dayStart.Add(time.Duration(uc.hours.EndHour) * time.Hour)

	slots := []TimeSlot{}
	for cur := windowStart; cur.Before(windowEnd); cur = cur.Add(grid) {
		slotEnd := cur.Add(slotDuration)

		available := true
		for _, ap := range appointments {
			if domain.Overlaps(cur, slotEnd, ap.start, ap.end) {
				available = false
				break
			}
		}

		if available {
			slots = append(slots, TimeSlot{
				StartTime: cur,
				Label:     cur.Format("15:04"),
			})
		}
	}

	return slots
}
