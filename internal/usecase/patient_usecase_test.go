package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCreatePatient(t *testing.T) {
	var created *entity.Patient
	repo := &mockPatientRepo{
		createFn: func(patient *entity.Patient) error {
			patient.ID = uuid.New()
			patient.CreatedAt = time.Now()
			created = patient
			return nil
		},
	}
	inv := &recordingInvalidator{}
	u := NewPatientUsecase(nil, newTestLogger(), repo, inv)

	resp, err := u.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: "1990-01-01",
		Gender:      "Female",
		Phone:       "555-0100",
		Email:       "ann@x.com",
		Address:     "1 Main St",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ann", created.FirstName)
	assert.Equal(t, "Lee", created.LastName)
	assert.Equal(t, "1990-01-01", created.DateOfBirth.Format("2006-01-02"))

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "1990-01-01", resp.DateOfBirth)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, []string{"patients"}, inv.tables)
}

func TestCreatePatientInvalidDateOfBirth(t *testing.T) {
	u := NewPatientUsecase(nil, newTestLogger(), &mockPatientRepo{}, &recordingInvalidator{})

	_, err := u.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: "01/01/1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
}

func TestUpdatePatientPartial(t *testing.T) {
	patientID := uuid.New()
	existing := &entity.Patient{
		ID:          patientID,
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:      "Female",
		Phone:       "555-0100",
		Email:       "ann@x.com",
		Address:     "1 Main St",
		CreatedAt:   time.Now(),
	}

	var updated *entity.Patient
	repo := &mockPatientRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Patient, error) {
			require.Equal(t, patientID, id)
			return existing, nil
		},
		updateFn: func(patient *entity.Patient) error {
			updated = patient
			return nil
		},
	}
	inv := &recordingInvalidator{}
	u := NewPatientUsecase(nil, newTestLogger(), repo, inv)

	resp, err := u.UpdatePatient(context.Background(), patientID, &dto.UpdatePatientRequest{
		Phone: "555-0199",
	})
	require.NoError(t, err)

	// Only the submitted field changes; identity stays put.
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Ann", updated.FirstName)
	assert.Equal(t, patientID, updated.ID)
	assert.Equal(t, "555-0199", resp.Phone)
	assert.Equal(t, []string{"patients"}, inv.tables)
}

func TestUpdatePatientNotFound(t *testing.T) {
	repo := &mockPatientRepo{
		findByIDFn: func(id uuid.UUID) (*entity.Patient, error) { return nil, nil },
	}
	u := NewPatientUsecase(nil, newTestLogger(), repo, &recordingInvalidator{})

	_, err := u.UpdatePatient(context.Background(), uuid.New(), &dto.UpdatePatientRequest{Phone: "555"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDeletePatient(t *testing.T) {
	repo := &mockPatientRepo{
		deleteFn: func(id uuid.UUID) (int64, error) { return 1, nil },
	}
	inv := &recordingInvalidator{}
	u := NewPatientUsecase(nil, newTestLogger(), repo, inv)

	require.NoError(t, u.DeletePatient(context.Background(), uuid.New()))
	assert.Equal(t, []string{"patients"}, inv.tables)
}

func TestDeletePatientNotFound(t *testing.T) {
	repo := &mockPatientRepo{
		deleteFn: func(id uuid.UUID) (int64, error) { return 0, nil },
	}
	inv := &recordingInvalidator{}
	u := NewPatientUsecase(nil, newTestLogger(), repo, inv)

	err := u.DeletePatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Empty(t, inv.tables)
}

func TestGetAllPatients(t *testing.T) {
	repo := &mockPatientRepo{
		findAllFn: func() ([]entity.Patient, error) {
			return []entity.Patient{
				{ID: uuid.New(), FirstName: "Ann", LastName: "Lee", DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
				{ID: uuid.New(), FirstName: "Bob", LastName: "Ray", DateOfBirth: time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	u := NewPatientUsecase(nil, newTestLogger(), repo, &recordingInvalidator{})

	resp, err := u.GetAllPatients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Patients, 2)
	assert.Equal(t, "Ann", resp.Patients[0].FirstName)
}
