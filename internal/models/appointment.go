package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `json:"patient_id"`
	Patient   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	// Slot key. Date is "2006-01-02", Time is a 30-minute slot label
	// such as "09:00" or "09:30".
	Date string `gorm:"size:10;not null;index:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_appointments_slot" json:"time"`

	Symptoms string `gorm:"size:500" json:"symptoms"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes        string `gorm:"size:500" json:"notes"`
	Diagnosis    string `gorm:"size:500" json:"diagnosis"`
	Prescription string `gorm:"size:500" json:"prescription"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
