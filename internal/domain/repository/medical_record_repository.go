package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.MedicalRecord, error)
	Update(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
