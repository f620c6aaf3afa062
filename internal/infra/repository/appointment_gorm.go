package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/medpoint-app/clinic-scheduler/internal/domain/appointment"
	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&doc, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		return nil, err
	}
	return &doc, nil
}

func (r *AppointmentGormRepository) GetDoctorByUserID(
	ctx context.Context,
	userID uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&doc).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		return nil, err
	}
	return &doc, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment runs the conflict check and the insert in one
// transaction. The check produces the friendly slot_taken error; the
// partial unique index on (doctor_id, date, time) is the authoritative
// guard against two bookings racing past the check.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"doctor_id = ? AND date = ? AND time = ? AND status <> ?",
				ap.DoctorID, ap.Date, ap.Time, string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Doctor.User").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Read views
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Doctor.User").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Availability (advisory)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAvailabilityWindow(
	ctx context.Context,
	doctorID uint,
	weekday int,
) (*models.AvailabilityWindow, error) {

	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND date = ? AND status <> ?",
			doctorID, date, string(domain.StatusCancelled),
		).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
