package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentDate   = errors.New("invalid appointment date format, use YYYY-MM-DDTHH:MM or RFC 3339")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
	ErrInvalidAppointmentFilter = errors.New("invalid status filter")
)

// appointmentDateLayouts are accepted in order; the first is what HTML
// datetime-local inputs produce.
var appointmentDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidAppointmentDate
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	// GetAllAppointments lists appointments joined to their patient and
	// doctor. statusFilter narrows to one status; the "completed" filter
	// backs the prescription candidate list.
	GetAllAppointments(ctx context.Context, statusFilter string) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	invalidator     service.Invalidator
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	invalidator service.Invalidator,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		invalidator:     invalidator,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointmentDate, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// New appointments default to scheduled.
	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}
	if !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidAppointmentStatus
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: appointmentDate,
		Status:          status,
	}
	if req.Notes != "" {
		notes := req.Notes
		appointment.Notes = &notes
	}
	appointment.SyncLegacyTime()

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, entity.Appointment{}.TableName())

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, statusFilter string) (*dto.AppointmentListResponse, error) {
	status := entity.AppointmentStatus(statusFilter)
	if status != "" && !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidAppointmentFilter
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, u.db, status)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(ctx, u.db, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		appointment.PatientID = *req.PatientID
		appointment.Patient = *patient
	}
	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(ctx, u.db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		appointment.DoctorID = *req.DoctorID
		appointment.Doctor = *doctor
	}
	if req.AppointmentDate != "" {
		appointmentDate, err := parseAppointmentDate(req.AppointmentDate)
		if err != nil {
			return nil, err
		}
		appointment.AppointmentDate = appointmentDate
		appointment.SyncLegacyTime()
	}
	if req.Status != "" {
		status := entity.AppointmentStatus(req.Status)
		if !entity.ValidAppointmentStatus(status) {
			return nil, ErrInvalidAppointmentStatus
		}
		appointment.Status = status
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, entity.Appointment{}.TableName())

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	affected, err := u.appointmentRepo.Delete(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.invalidator.Invalidate(ctx, entity.Appointment{}.TableName())

	return nil
}
