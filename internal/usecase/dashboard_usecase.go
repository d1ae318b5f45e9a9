package usecase

import (
	"context"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	// GetStats computes the four summary counts. Each count is fetched
	// independently; one failing query is logged and its count omitted,
	// the others still return, so the call itself cannot fail.
	GetStats(ctx context.Context) *dto.DashboardStatsResponse
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	cache           service.CountCache
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
	now             func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache service.CountCache,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		cache:           cache,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		now:             time.Now,
	}
}

// TodayRange returns the inclusive bounds of the calendar day containing
// now: [00:00:00, 23:59:59] in now's location. Both bounds are built from
// the calendar date rather than a 24h offset, so DST-transition days keep
// their full span.
func TodayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return start, end
}

func (u *dashboardUsecase) GetStats(ctx context.Context) *dto.DashboardStatsResponse {
	stats := &dto.DashboardStatsResponse{}

	stats.PatientsCount = u.cachedCount(ctx, service.CountKeyPatients, func() (int64, error) {
		return u.patientRepo.Count(ctx, u.db)
	})
	stats.DoctorsCount = u.cachedCount(ctx, service.CountKeyDoctors, func() (int64, error) {
		return u.doctorRepo.Count(ctx, u.db)
	})
	stats.AppointmentsTodayCount = u.cachedCount(ctx, service.CountKeyAppointmentsToday, func() (int64, error) {
		from, to := TodayRange(u.now())
		return u.appointmentRepo.CountByDateRange(ctx, u.db, from, to)
	})
	stats.MedicalRecordsCount = u.cachedCount(ctx, service.CountKeyMedicalRecords, func() (int64, error) {
		return u.recordRepo.Count(ctx, u.db)
	})

	return stats
}

func (u *dashboardUsecase) cachedCount(ctx context.Context, key string, fetch func() (int64, error)) *int64 {
	if count, ok := u.cache.Get(ctx, key); ok {
		return &count
	}

	count, err := fetch()
	if err != nil {
		u.log.Warnf("Failed to compute %s: %+v", key, err)
		return nil
	}

	u.cache.Set(ctx, key, count)
	return &count
}
