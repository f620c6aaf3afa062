package models

import "time"

const (
	PaymentStatusCreated  = "created"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// Payment records one consultation-fee charge raised against an
// appointment. GatewayID holds the Mercado Pago preference id.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Reference string  `gorm:"size:64;uniqueIndex" json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `gorm:"size:3;default:'BRL'" json:"currency"`

	Status    string `gorm:"size:20;default:'created'" json:"status"`
	GatewayID string `gorm:"size:64" json:"gateway_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
