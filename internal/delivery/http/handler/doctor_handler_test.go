package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoctorUsecase struct {
	deleteFn func(id uuid.UUID) error
}

func (s *stubDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return nil, nil
}

func (s *stubDoctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	return nil, nil
}

func (s *stubDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	return nil, nil
}

func (s *stubDoctorUsecase) UpdateDoctor(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return nil, nil
}

func (s *stubDoctorUsecase) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(id)
}

func doctorRouter(h *DoctorHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/doctors/{id}", h.DeleteDoctor).Methods(http.MethodDelete)
	return r
}

func TestDeleteDoctorStillReferenced(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    "23503",
		Message: `update or delete on table "doctors" violates foreign key constraint "appointments_doctor_id_fkey" on table "appointments"`,
	}
	stub := &stubDoctorUsecase{
		deleteFn: func(id uuid.UUID) error {
			return fmt.Errorf("failed to delete doctor: %w", pgErr)
		},
	}
	h := NewDoctorHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/doctors/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	doctorRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Doctor is still referenced", resp.Message)

	// The store's error text reaches the caller untouched.
	errText, ok := resp.Error.(string)
	require.True(t, ok)
	assert.Contains(t, errText, "appointments_doctor_id_fkey")
	assert.Contains(t, errText, "23503")
}

func TestDeleteDoctorNotFound(t *testing.T) {
	stub := &stubDoctorUsecase{
		deleteFn: func(id uuid.UUID) error {
			return usecase.ErrDoctorNotFound
		},
	}
	h := NewDoctorHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/doctors/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	doctorRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
