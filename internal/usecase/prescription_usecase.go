package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	// CreatePrescription validates that the appointment exists but not
	// its status: the completed-only restriction lives in the candidate
	// list, so a direct call can still prescribe against a scheduled or
	// cancelled appointment.
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error)
	GetAllPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	DeletePrescription(ctx context.Context, prescriptionID uuid.UUID) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	invalidator      service.Invalidator
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	invalidator service.Invalidator,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		invalidator:      invalidator,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	prescription := &entity.Prescription{
		AppointmentID: req.AppointmentID,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		Instructions:  req.Instructions,
	}

	if err := u.prescriptionRepo.Create(ctx, u.db, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, entity.Prescription{}.TableName())

	prescription.Appointment = *appointment
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", prescriptionID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetAllPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, prescriptionID uuid.UUID) error {
	affected, err := u.prescriptionRepo.Delete(ctx, u.db, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", prescriptionID, err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}

	u.invalidator.Invalidate(ctx, entity.Prescription{}.TableName())

	return nil
}
