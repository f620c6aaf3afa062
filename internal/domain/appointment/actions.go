package appointment

import (
	"time"

	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition applies a validated status move, stamping the terminal
// markers. Callers must have run AuthorizeTransition/AuthorizeCancel first.
func Transition(ap *models.Appointment, to Status, now time.Time) {
	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
}
