package models

import "time"

// AvailabilityWindow is a doctor's declared consultation window for one
// weekday. Windows are advisory: they drive the free-slot listing but are
// not enforced at booking time.
type AvailabilityWindow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index" json:"doctor_id"`

	Weekday int `json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
