package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayRange(t *testing.T) {
	now := time.Date(2026, 8, 29, 17, 45, 12, 0, time.UTC)
	from, to := TodayRange(now)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC), to)

	// The window bounds are the same regardless of time of day.
	from2, to2 := TodayRange(time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC))
	assert.Equal(t, from, from2)
	assert.Equal(t, to, to2)
}

func TestTodayRangeDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Fall back: the 25-hour day still ends at 23:59:59 local.
	from, to := TodayRange(time.Date(2026, 11, 1, 12, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 11, 1, 23, 59, 59, 0, loc), to)

	// Spring forward: the 23-hour day does not spill into the next day.
	from, to = TodayRange(time.Date(2026, 3, 8, 12, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 3, 8, 23, 59, 59, 0, loc), to)
}

func TestGetStats(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	var gotFrom, gotTo time.Time
	apptRepo := &mockAppointmentRepo{
		countByDateRangeFn: func(from, to time.Time) (int64, error) {
			gotFrom, gotTo = from, to
			return 3, nil
		},
	}
	cache := newFakeCountCache()
	u := NewDashboardUsecase(nil, newTestLogger(), cache,
		&mockPatientRepo{countFn: func() (int64, error) { return 12, nil }},
		&mockDoctorRepo{countFn: func() (int64, error) { return 4, nil }},
		apptRepo,
		&mockMedicalRecordRepo{countFn: func() (int64, error) { return 7, nil }},
	).(*dashboardUsecase)
	u.now = func() time.Time { return now }

	stats := u.GetStats(context.Background())

	require.NotNil(t, stats.PatientsCount)
	assert.EqualValues(t, 12, *stats.PatientsCount)
	require.NotNil(t, stats.DoctorsCount)
	assert.EqualValues(t, 4, *stats.DoctorsCount)
	require.NotNil(t, stats.AppointmentsTodayCount)
	assert.EqualValues(t, 3, *stats.AppointmentsTodayCount)
	require.NotNil(t, stats.MedicalRecordsCount)
	assert.EqualValues(t, 7, *stats.MedicalRecordsCount)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC), gotTo)

	// Computed counts get written back to the cache.
	assert.EqualValues(t, 12, cache.sets[service.CountKeyPatients])
	assert.EqualValues(t, 3, cache.sets[service.CountKeyAppointmentsToday])
}

func TestGetStatsOneFailureDoesNotBlockOthers(t *testing.T) {
	u := NewDashboardUsecase(nil, newTestLogger(), newFakeCountCache(),
		&mockPatientRepo{countFn: func() (int64, error) { return 0, errors.New("relation does not exist") }},
		&mockDoctorRepo{countFn: func() (int64, error) { return 4, nil }},
		&mockAppointmentRepo{countByDateRangeFn: func(from, to time.Time) (int64, error) { return 3, nil }},
		&mockMedicalRecordRepo{countFn: func() (int64, error) { return 7, nil }},
	)

	stats := u.GetStats(context.Background())

	assert.Nil(t, stats.PatientsCount)
	require.NotNil(t, stats.DoctorsCount)
	assert.EqualValues(t, 4, *stats.DoctorsCount)
	require.NotNil(t, stats.AppointmentsTodayCount)
	require.NotNil(t, stats.MedicalRecordsCount)
}

func TestGetStatsServesFromCache(t *testing.T) {
	cache := newFakeCountCache()
	cache.values[service.CountKeyPatients] = 42

	u := NewDashboardUsecase(nil, newTestLogger(), cache,
		&mockPatientRepo{countFn: func() (int64, error) {
			t.Fatal("count query should not run on cache hit")
			return 0, nil
		}},
		&mockDoctorRepo{countFn: func() (int64, error) { return 4, nil }},
		&mockAppointmentRepo{countByDateRangeFn: func(from, to time.Time) (int64, error) { return 3, nil }},
		&mockMedicalRecordRepo{countFn: func() (int64, error) { return 7, nil }},
	)

	stats := u.GetStats(context.Background())
	require.NotNil(t, stats.PatientsCount)
	assert.EqualValues(t, 42, *stats.PatientsCount)
}
