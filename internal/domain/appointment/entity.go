package appointment

import (
	"time"

	"github.com/petcarebr/petshop-scheduler/internal/models"
)

// ===============================
// Ações de domínio
// ===============================

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCanceled); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	if reason != "" {
		ap.Notes = reason
	}
	return nil
}

func Confirm(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Start(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusInProgress); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
