package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionToResponse converts a Prescription entity with its preloaded
// appointment chain to a response DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		Medication:    prescription.Medication,
		Dosage:        prescription.Dosage,
		Instructions:  prescription.Instructions,
		CreatedAt:     prescription.CreatedAt,
	}

	if prescription.Appointment.ID != uuid.Nil {
		response.Appointment = AppointmentToSummary(&prescription.Appointment)
	}

	return response
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}
