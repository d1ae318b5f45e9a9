package usecase

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hand-rolled repository stubs; each method delegates to an optional
// function field so tests only wire what they exercise.

type mockPatientRepo struct {
	createFn   func(patient *entity.Patient) error
	findByIDFn func(id uuid.UUID) (*entity.Patient, error)
	findAllFn  func() ([]entity.Patient, error)
	updateFn   func(patient *entity.Patient) error
	deleteFn   func(id uuid.UUID) (int64, error)
	countFn    func() (int64, error)
}

func (m *mockPatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return m.createFn(patient)
}

func (m *mockPatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return m.findByIDFn(id)
}

func (m *mockPatientRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	return m.findAllFn()
}

func (m *mockPatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return m.updateFn(patient)
}

func (m *mockPatientRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.deleteFn(id)
}

func (m *mockPatientRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return m.countFn()
}

type mockDoctorRepo struct {
	createFn   func(doctor *entity.Doctor) error
	findByIDFn func(id uuid.UUID) (*entity.Doctor, error)
	findAllFn  func() ([]entity.Doctor, error)
	updateFn   func(doctor *entity.Doctor) error
	deleteFn   func(id uuid.UUID) (int64, error)
	countFn    func() (int64, error)
}

func (m *mockDoctorRepo) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return m.createFn(doctor)
}

func (m *mockDoctorRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return m.findByIDFn(id)
}

func (m *mockDoctorRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	return m.findAllFn()
}

func (m *mockDoctorRepo) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return m.updateFn(doctor)
}

func (m *mockDoctorRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.deleteFn(id)
}

func (m *mockDoctorRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return m.countFn()
}

type mockAppointmentRepo struct {
	createFn           func(appointment *entity.Appointment) error
	findByIDFn         func(id uuid.UUID) (*entity.Appointment, error)
	findAllFn          func(status entity.AppointmentStatus) ([]entity.Appointment, error)
	updateFn           func(appointment *entity.Appointment) error
	deleteFn           func(id uuid.UUID) (int64, error)
	countByDateRangeFn func(from, to time.Time) (int64, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return m.createFn(appointment)
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return m.findByIDFn(id)
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context, db *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	return m.findAllFn(status)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return m.updateFn(appointment)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.deleteFn(id)
}

func (m *mockAppointmentRepo) CountByDateRange(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	return m.countByDateRangeFn(from, to)
}

type mockPrescriptionRepo struct {
	createFn   func(prescription *entity.Prescription) error
	findByIDFn func(id uuid.UUID) (*entity.Prescription, error)
	findAllFn  func() ([]entity.Prescription, error)
	deleteFn   func(id uuid.UUID) (int64, error)
}

func (m *mockPrescriptionRepo) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	return m.createFn(prescription)
}

func (m *mockPrescriptionRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	return m.findByIDFn(id)
}

func (m *mockPrescriptionRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error) {
	return m.findAllFn()
}

func (m *mockPrescriptionRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.deleteFn(id)
}

type mockMedicalRecordRepo struct {
	createFn   func(record *entity.MedicalRecord) error
	findByIDFn func(id uuid.UUID) (*entity.MedicalRecord, error)
	findAllFn  func() ([]entity.MedicalRecord, error)
	updateFn   func(record *entity.MedicalRecord) error
	deleteFn   func(id uuid.UUID) (int64, error)
	countFn    func() (int64, error)
}

func (m *mockMedicalRecordRepo) Create(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error {
	return m.createFn(record)
}

func (m *mockMedicalRecordRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	return m.findByIDFn(id)
}

func (m *mockMedicalRecordRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.MedicalRecord, error) {
	return m.findAllFn()
}

func (m *mockMedicalRecordRepo) Update(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error {
	return m.updateFn(record)
}

func (m *mockMedicalRecordRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	return m.deleteFn(id)
}

func (m *mockMedicalRecordRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return m.countFn()
}

// recordingInvalidator captures which tables were invalidated.
type recordingInvalidator struct {
	tables []string
}

func (r *recordingInvalidator) Invalidate(ctx context.Context, table string) {
	r.tables = append(r.tables, table)
}

// fakeCountCache is an in-memory stand-in for the Redis count cache.
type fakeCountCache struct {
	values map[string]int64
	sets   map[string]int64
}

func newFakeCountCache() *fakeCountCache {
	return &fakeCountCache{
		values: make(map[string]int64),
		sets:   make(map[string]int64),
	}
}

func (c *fakeCountCache) Get(ctx context.Context, key string) (int64, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *fakeCountCache) Set(ctx context.Context, key string, value int64) {
	c.sets[key] = value
}
