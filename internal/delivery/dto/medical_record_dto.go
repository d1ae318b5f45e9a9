package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicalRecordRequest struct {
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	RecordDate string    `json:"record_date" validate:"required"`
	Diagnosis  string    `json:"diagnosis" validate:"required,max=2000"`
	Treatment  string    `json:"treatment" validate:"required,max=2000"`
	Notes      string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateMedicalRecordRequest struct {
	PatientID  *uuid.UUID `json:"patient_id" validate:"omitempty"`
	RecordDate string     `json:"record_date" validate:"omitempty"`
	Diagnosis  string     `json:"diagnosis" validate:"omitempty,max=2000"`
	Treatment  string     `json:"treatment" validate:"omitempty,max=2000"`
	Notes      *string    `json:"notes" validate:"omitempty,max=2000"`
}

type MedicalRecordResponse struct {
	ID         uuid.UUID       `json:"id"`
	PatientID  uuid.UUID       `json:"patient_id"`
	RecordDate string          `json:"record_date"`
	Diagnosis  string          `json:"diagnosis"`
	Treatment  string          `json:"treatment"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Patient    *PatientSummary `json:"patient,omitempty"`
}

type MedicalRecordListResponse struct {
	MedicalRecords []MedicalRecordResponse `json:"medical_records"`
	Total          int                     `json:"total"`
}
