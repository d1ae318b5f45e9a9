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
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrInvalidRecordDate     = errors.New("invalid record date format, use YYYY-MM-DD")
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMedicalRecord(ctx context.Context, recordID uuid.UUID) (*dto.MedicalRecordResponse, error)
	GetAllMedicalRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error)
	UpdateMedicalRecord(ctx context.Context, recordID uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	DeleteMedicalRecord(ctx context.Context, recordID uuid.UUID) error
}

type medicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	invalidator service.Invalidator
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	invalidator service.Invalidator,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		invalidator: invalidator,
	}
}

func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		return nil, ErrInvalidRecordDate
	}

	record := &entity.MedicalRecord{
		PatientID:  req.PatientID,
		RecordDate: recordDate,
		VisitDate:  recordDate,
		Diagnosis:  req.Diagnosis,
		Treatment:  req.Treatment,
	}
	if req.Notes != "" {
		notes := req.Notes
		record.Notes = &notes
	}

	if err := u.recordRepo.Create(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, entity.MedicalRecord{}.TableName())

	record.Patient = *patient
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, recordID uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetAllMedicalRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error) {
	records, err := u.recordRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		MedicalRecords: converter.MedicalRecordsToResponses(records),
		Total:          len(records),
	}, nil
}

func (u *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, recordID uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(ctx, u.db, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		record.PatientID = *req.PatientID
		record.Patient = *patient
	}
	if req.RecordDate != "" {
		recordDate, err := time.Parse("2006-01-02", req.RecordDate)
		if err != nil {
			return nil, ErrInvalidRecordDate
		}
		// Both date columns move together until visit_date is dropped.
		record.RecordDate = recordDate
		record.VisitDate = recordDate
	}
	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != "" {
		record.Treatment = req.Treatment
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := u.recordRepo.Update(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to update medical record %s: %+v", recordID, err)
		return nil, err
	}

	u.invalidator.Invalidate(ctx, entity.MedicalRecord{}.TableName())

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, recordID uuid.UUID) error {
	affected, err := u.recordRepo.Delete(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to delete medical record %s: %+v", recordID, err)
		return err
	}
	if affected == 0 {
		return ErrMedicalRecordNotFound
	}

	u.invalidator.Invalidate(ctx, entity.MedicalRecord{}.TableName())

	return nil
}
