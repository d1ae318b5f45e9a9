package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord represents a diagnosis/treatment entry for a patient.
// VisitDate duplicates RecordDate into the column name an earlier schema
// used; both are written on every create and update until the legacy
// column is dropped.
type MedicalRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	RecordDate time.Time `gorm:"type:date;not null;index" json:"record_date"`
	VisitDate  time.Time `gorm:"type:date" json:"visit_date,omitempty"`
	Diagnosis  string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment  string    `gorm:"type:text;not null" json:"treatment"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
