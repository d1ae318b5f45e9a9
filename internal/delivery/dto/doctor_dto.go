package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Phone          string `json:"phone" validate:"required,max=20"`
	Email          string `json:"email" validate:"required,email,max=255"`
}

type UpdateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"omitempty,max=100"`
	LastName       string `json:"last_name" validate:"omitempty,max=100"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
