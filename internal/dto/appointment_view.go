package dto

import (
	"time"

	"github.com/medpoint-app/clinic-scheduler/internal/models"
)

// Read-view composition for the two appointment listings. The write model
// stays in models.Appointment; these projections decide what each side of
// the booking gets to see.

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type DoctorSummary struct {
	ID              uint        `json:"id"`
	Specialization  string      `json:"specialization"`
	ConsultationFee float64     `json:"consultation_fee"`
	PhotoURL        string      `json:"photo_url,omitempty"`
	User            UserSummary `json:"user"`
}

type PatientAppointmentView struct {
	ID           uint          `json:"id"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Symptoms     string        `json:"symptoms"`
	Status       string        `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	Diagnosis    string        `json:"diagnosis,omitempty"`
	Prescription string        `json:"prescription,omitempty"`
	Doctor       DoctorSummary `json:"doctor"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type DoctorAppointmentView struct {
	ID           uint        `json:"id"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	Symptoms     string      `json:"symptoms"`
	Status       string      `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	Diagnosis    string      `json:"diagnosis,omitempty"`
	Prescription string      `json:"prescription,omitempty"`
	Patient      UserSummary `json:"patient"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func userSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func doctorSummary(d *models.Doctor) DoctorSummary {
	return DoctorSummary{
		ID:              d.ID,
		Specialization:  d.Specialization,
		ConsultationFee: d.ConsultationFee,
		PhotoURL:        d.PhotoURL,
		User:            userSummary(&d.User),
	}
}

func BuildPatientView(ap *models.Appointment) PatientAppointmentView {
	return PatientAppointmentView{
		ID:           ap.ID,
		Date:         ap.Date,
		Time:         ap.Time,
		Symptoms:     ap.Symptoms,
		Status:       ap.Status,
		Notes:        ap.Notes,
		Diagnosis:    ap.Diagnosis,
		Prescription: ap.Prescription,
		Doctor:       doctorSummary(&ap.Doctor),
		CreatedAt:    ap.CreatedAt,
		UpdatedAt:    ap.UpdatedAt,
	}
}

func BuildDoctorView(ap *models.Appointment) DoctorAppointmentView {
	return DoctorAppointmentView{
		ID:           ap.ID,
		Date:         ap.Date,
		Time:         ap.Time,
		Symptoms:     ap.Symptoms,
		Status:       ap.Status,
		Notes:        ap.Notes,
		Diagnosis:    ap.Diagnosis,
		Prescription: ap.Prescription,
		Patient:      userSummary(&ap.Patient),
		CreatedAt:    ap.CreatedAt,
		UpdatedAt:    ap.UpdatedAt,
	}
}
