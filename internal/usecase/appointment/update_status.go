package appointment

import (
	"context"
	"time"

	"github.com/medpoint-app/clinic-scheduler/internal/audit"
	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID uint
	NewStatus     domain.Status
	Notes         string
}

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute advances an appointment along the status graph. Only the owning
// doctor may confirm or complete; cancellation through this path is open
// to either owner.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if !in.NewStatus.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeTransition(actor, ap, in.NewStatus); err != nil {
		return nil, err
	}

	domain.Transition(ap, in.NewStatus, time.Now())
	if in.Notes != "" {
		ap.Notes = in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_" + string(in.NewStatus),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
