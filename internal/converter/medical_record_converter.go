package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity with its preloaded
// patient to a response DTO. The legacy visit_date column is not exposed.
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:         record.ID,
		PatientID:  record.PatientID,
		RecordDate: record.RecordDate.Format("2006-01-02"),
		Diagnosis:  record.Diagnosis,
		Treatment:  record.Treatment,
		Notes:      record.Notes,
		CreatedAt:  record.CreatedAt,
		Patient:    PatientToSummary(&record.Patient),
	}
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
