package repository

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindAll returns appointments with patient and doctor preloaded,
	// optionally restricted to a single status, newest appointment first.
	FindAll(ctx context.Context, db *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	CountByDateRange(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error)
}
