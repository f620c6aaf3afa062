package appointment

import (
	"context"

	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Doctor directory --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetDoctorByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Doctor, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment inserts ap after a serialized check that no other
	// non-cancelled appointment holds the same (doctor, date, time) slot.
	// Returns the slot_taken business error on conflict.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Read views --------
	ListForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListForDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Appointment, error)

	// -------- Availability (advisory) --------
	GetAvailabilityWindow(
		ctx context.Context,
		doctorID uint,
		weekday int,
	) (*models.AvailabilityWindow, error)

	ListBookedTimes(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]string, error)
}
