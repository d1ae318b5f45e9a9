package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Gender      string `json:"gender" validate:"required,max=20"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Address     string `json:"address" validate:"required"`
}

// UpdatePatientRequest carries a partial payload; empty fields are left
// unchanged.
type UpdatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Gender      string `json:"gender" validate:"omitempty,max=20"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Address     string `json:"address" validate:"omitempty"`
}

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
