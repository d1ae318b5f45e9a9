package dto

// DashboardStatsResponse holds the four summary counts. Each count is
// computed independently; a count whose query failed is omitted rather
// than failing the whole response.
type DashboardStatsResponse struct {
	PatientsCount          *int64 `json:"patients_count,omitempty"`
	DoctorsCount           *int64 `json:"doctors_count,omitempty"`
	AppointmentsTodayCount *int64 `json:"appointments_today_count,omitempty"`
	MedicalRecordsCount    *int64 `json:"medical_records_count,omitempty"`
}
