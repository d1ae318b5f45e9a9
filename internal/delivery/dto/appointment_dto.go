package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes           string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentRequest struct {
	PatientID       *uuid.UUID `json:"patient_id" validate:"omitempty"`
	DoctorID        *uuid.UUID `json:"doctor_id" validate:"omitempty"`
	AppointmentDate string     `json:"appointment_date" validate:"omitempty"`
	Status          string     `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes           *string    `json:"notes" validate:"omitempty,max=2000"`
}

// PatientSummary is the joined patient projection rendered on appointment
// and prescription rows.
type PatientSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type DoctorSummary struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization,omitempty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Doctor          *DoctorSummary  `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
