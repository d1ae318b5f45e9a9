package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	// FindAll returns prescriptions with the appointment and its patient
	// and doctor preloaded, newest first.
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
