package appointment

import (
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
)

type appointmentFixture struct {
	id       string
	start    time.Time
	duration int
	status   Status
}

func buildAppointments(fixtures ...appointmentFixture) []models.Appointment {
	out := make([]models.Appointment, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, models.Appointment{
			ID:              f.id,
			StartTime:       f.start,
			DurationMinutes: f.duration,
			Status:          string(f.status),
		})
	}
	return out
}
