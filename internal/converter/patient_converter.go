package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DateOfBirth: patient.DateOfBirth.Format("2006-01-02"),
		Gender:      patient.Gender,
		Phone:       patient.Phone,
		Email:       patient.Email,
		Address:     patient.Address,
		CreatedAt:   patient.CreatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientToSummary converts a joined patient row to the projection used on
// appointment and prescription responses.
func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	if patient == nil || patient.ID == uuid.Nil {
		return nil
	}

	return &dto.PatientSummary{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
	}
}
