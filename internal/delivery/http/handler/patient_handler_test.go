package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientUsecase struct {
	createFn func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	getFn    func(id uuid.UUID) (*dto.PatientResponse, error)
	listFn   func() (*dto.PatientListResponse, error)
	updateFn func(id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn func(id uuid.UUID) error
}

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return s.createFn(req)
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	return s.getFn(id)
}

func (s *stubPatientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	return s.listFn()
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return s.updateFn(id, req)
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(id)
}

func patientRouter(h *PatientHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/patients", h.CreatePatient).Methods(http.MethodPost)
	r.HandleFunc("/patients", h.GetAllPatients).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}", h.GetPatient).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}", h.DeletePatient).Methods(http.MethodDelete)
	return r
}

func TestCreatePatientHandler(t *testing.T) {
	stub := &stubPatientUsecase{
		createFn: func(req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{
				ID:          uuid.New(),
				FirstName:   req.FirstName,
				LastName:    req.LastName,
				DateOfBirth: req.DateOfBirth,
				Gender:      req.Gender,
				Phone:       req.Phone,
				Email:       req.Email,
				Address:     req.Address,
				CreatedAt:   time.Now(),
			}, nil
		},
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	body, _ := json.Marshal(dto.CreatePatientRequest{
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: "1990-01-01",
		Gender:      "Female",
		Phone:       "555-0100",
		Email:       "ann@x.com",
		Address:     "1 Main St",
	})
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	patientRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Patient created successfully", resp.Message)
}

func TestCreatePatientHandlerValidation(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	// Missing every required field.
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	patientRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
}

func TestGetPatientHandlerNotFound(t *testing.T) {
	stub := &stubPatientUsecase{
		getFn: func(id uuid.UUID) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	patientRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPatientHandlerBadID(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/patients/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	patientRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePatientHandler(t *testing.T) {
	var deleted uuid.UUID
	stub := &stubPatientUsecase{
		deleteFn: func(id uuid.UUID) error {
			deleted = id
			return nil
		},
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/patients/"+id.String(), nil)
	rec := httptest.NewRecorder()
	patientRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, deleted)
}
