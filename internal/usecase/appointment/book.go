package appointment

import (
	"context"

	"github.com/medpoint-app/clinic-scheduler/internal/audit"
	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint

	Date     string
	Time     string
	Symptoms string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute books a slot for the calling patient. The doctor must exist in
// the directory; availability windows are advisory and deliberately not
// checked here. The repository closes the check-then-insert race.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Time:      in.Time,
		Symptoms:  in.Symptoms,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		uc.audit.Dispatch(audit.Event{
			UserID: &in.PatientID,
			Action: "appointment_conflict",
			Entity: "appointment",
			Metadata: map[string]any{
				"doctor_id": in.DoctorID,
				"date":      in.Date,
				"time":      in.Time,
			},
		})
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.PatientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Reload with the doctor/patient projections the API returns.
	return uc.repo.GetAppointment(ctx, ap.ID)
}
