package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Specialization  string  `gorm:"size:100;not null" json:"specialization"`
	Experience      int     `json:"experience"`
	Education       string  `gorm:"size:255" json:"education"`
	LicenseNumber   string  `gorm:"size:50;uniqueIndex;not null" json:"license_number"`
	Bio             string  `gorm:"size:500" json:"bio"`
	ConsultationFee float64 `json:"consultation_fee"`
	PhotoURL        string  `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
