package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePrescriptionRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Medication    string    `json:"medication" validate:"required,max=255"`
	Dosage        string    `json:"dosage" validate:"required,max=100"`
	Instructions  string    `json:"instructions" validate:"required,max=1000"`
}

// AppointmentSummary is the joined appointment projection on a prescription
// row, carrying the transitively joined patient and doctor names.
type AppointmentSummary struct {
	ID              uuid.UUID       `json:"id"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Status          string          `json:"status"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Doctor          *DoctorSummary  `json:"doctor,omitempty"`
}

type PrescriptionResponse struct {
	ID            uuid.UUID           `json:"id"`
	AppointmentID uuid.UUID           `json:"appointment_id"`
	Medication    string              `json:"medication"`
	Dosage        string              `json:"dosage"`
	Instructions  string              `json:"instructions"`
	CreatedAt     time.Time           `json:"created_at"`
	Appointment   *AppointmentSummary `json:"appointment,omitempty"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
