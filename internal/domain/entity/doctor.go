package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a practicing clinic doctor
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Phone          string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
