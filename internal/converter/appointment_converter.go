package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity with preloaded
// patient and doctor rows to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		Patient:         PatientToSummary(&appointment.Patient),
		Doctor:          DoctorToSummary(&appointment.Doctor),
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToSummary converts a joined appointment row to the projection
// rendered on prescription responses and in the prescription candidate list.
func AppointmentToSummary(appointment *entity.Appointment) *dto.AppointmentSummary {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentSummary{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		Patient:         PatientToSummary(&appointment.Patient),
		Doctor:          DoctorToSummary(&appointment.Doctor),
	}
}
