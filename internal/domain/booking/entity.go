package booking

import (
	"time"

	"github.com/BruksfildServices01/elite-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus aplica uma transição de status, carimbando os timestamps terminais
func SetStatus(ap *models.Appointment, next Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)

	switch next {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return SetStatus(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return SetStatus(ap, StatusCompleted, now)
}
