package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription represents medication prescribed during an appointment
type Prescription struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Medication    string    `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage        string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Instructions  string    `gorm:"type:text;not null" json:"instructions"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
