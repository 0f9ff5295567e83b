package appointment

import (
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
)

// Overlaps aplica o teste clássico de sobreposição de intervalos
// semiabertos [início, fim): encostar na borda não é conflito — um
// atendimento terminando às 10:00 convive com outro começando às 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FindConflict devolve o primeiro agendamento que colide com o intervalo
// candidato, ignorando cancelados e o próprio registro (excludeID, usado
// em atualizações — um agendamento nunca conflita consigo mesmo).
// Curto-circuita no primeiro conflito.
func FindConflict(
	existing []models.Appointment,
	candidateStart time.Time,
	durationMinutes int,
	excludeID string,
) *models.Appointment {

	candidateEnd := candidateStart.Add(time.Duration(durationMinutes) * time.Minute)

	for i := range existing {
		ap := &existing[i]

		if ap.ID == excludeID {
			continue
		}
		if Status(ap.Status) == StatusCanceled {
			continue
		}

		if Overlaps(candidateStart, candidateEnd, ap.StartTime, ap.EndTime()) {
			return ap
		}
	}

	return nil
}
