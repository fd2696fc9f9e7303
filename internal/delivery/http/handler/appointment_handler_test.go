package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/delivery/http/handler"
	"hospital-appointment-api/internal/delivery/http/middleware"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/jwt"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	startFn            func(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error
	completeFn         func(ctx context.Context, doctorID uuid.UUID, appointmentID int64, req *dto.CompleteAppointmentRequest) error
	submitRatingFn     func(ctx context.Context, patientID uuid.UUID, appointmentID int64, req *dto.SubmitRatingRequest) error
	getMedicalRecordFn func(ctx context.Context, userID uuid.UUID, roleID int, appointmentID int64) (*dto.MedicalRecordResponse, error)
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (s *stubAppointmentUsecase) CancelByPatient(ctx context.Context, patientID uuid.UUID, appointmentID int64) error {
	return nil
}

func (s *stubAppointmentUsecase) Approve(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
	return nil
}

func (s *stubAppointmentUsecase) Start(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
	return s.startFn(ctx, doctorID, appointmentID)
}

func (s *stubAppointmentUsecase) CancelByDoctor(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
	return nil
}

func (s *stubAppointmentUsecase) Complete(ctx context.Context, doctorID uuid.UUID, appointmentID int64, req *dto.CompleteAppointmentRequest) error {
	return s.completeFn(ctx, doctorID, appointmentID, req)
}

func (s *stubAppointmentUsecase) GetMedicalRecord(ctx context.Context, userID uuid.UUID, roleID int, appointmentID int64) (*dto.MedicalRecordResponse, error) {
	return s.getMedicalRecordFn(ctx, userID, roleID, appointmentID)
}

func (s *stubAppointmentUsecase) SubmitRating(ctx context.Context, patientID uuid.UUID, appointmentID int64, req *dto.SubmitRatingRequest) error {
	return s.submitRatingFn(ctx, patientID, appointmentID, req)
}

func authenticatedRequest(method, target, body string, claims *jwt.Claims, vars map[string]string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func doctorClaims() *jwt.Claims {
	return &jwt.Claims{UserID: uuid.New(), RoleID: entity.RoleIDDoctor}
}

func patientClaims() *jwt.Claims {
	return &jwt.Claims{UserID: uuid.New(), RoleID: entity.RoleIDPatient}
}

func TestStartWrongStateIsNotFound(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{
		startFn: func(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
			// Wrong status, wrong owner and missing row all collapse here
			return usecase.ErrAppointmentNotFound
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPatch, "/api/v1/doctor/appointments/5/start", "", doctorClaims(), map[string]string{"id": "5"})
	h.Start(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartInvalidID(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPatch, "/api/v1/doctor/appointments/abc/start", "", doctorClaims(), map[string]string{"id": "abc"})
	h.Start(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteForwardsMedicalRecord(t *testing.T) {
	var captured *dto.CompleteAppointmentRequest
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{
		completeFn: func(ctx context.Context, doctorID uuid.UUID, appointmentID int64, req *dto.CompleteAppointmentRequest) error {
			captured = req
			return nil
		},
	}, validator.NewValidator())

	payload := `{
		"notes": "session done",
		"medical_record": {
			"symptoms": "headache",
			"diagnosis": "migraine",
			"treatment": "rest",
			"follow_up_date": "2026-04-01"
		}
	}`
	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPatch, "/api/v1/doctor/appointments/7/complete", payload, doctorClaims(), map[string]string{"id": "7"})
	h.Complete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.MedicalRecord)
	assert.Equal(t, "migraine", captured.MedicalRecord.Diagnosis)
	assert.Equal(t, "session done", captured.Notes)
}

func TestCompleteWithoutRecord(t *testing.T) {
	var captured *dto.CompleteAppointmentRequest
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{
		completeFn: func(ctx context.Context, doctorID uuid.UUID, appointmentID int64, req *dto.CompleteAppointmentRequest) error {
			captured = req
			return nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPatch, "/api/v1/doctor/appointments/7/complete", `{"notes":"ok"}`, doctorClaims(), map[string]string{"id": "7"})
	h.Complete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Nil(t, captured.MedicalRecord)
}

func TestSubmitRatingSecondAttemptRejected(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{
		submitRatingFn: func(ctx context.Context, patientID uuid.UUID, appointmentID int64, req *dto.SubmitRatingRequest) error {
			return usecase.ErrRatingAlreadySubmitted
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPost, "/api/v1/patient/appointments/3/rate", `{"patient_rating":4.5}`, patientClaims(), map[string]string{"id": "3"})
	h.SubmitRating(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRatingOutOfRange(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{
		submitRatingFn: func(ctx context.Context, patientID uuid.UUID, appointmentID int64, req *dto.SubmitRatingRequest) error {
			t.Fatal("usecase must not be called on validation failure")
			return nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodPost, "/api/v1/patient/appointments/3/rate", `{"patient_rating":5.5}`, patientClaims(), map[string]string{"id": "3"})
	h.SubmitRating(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMedicalRecordUnauthorizedIsNotFound(t *testing.T) {
	h := handler.NewAppointmentHandler(&stubAppointmentUsecase{
		getMedicalRecordFn: func(ctx context.Context, userID uuid.UUID, roleID int, appointmentID int64) (*dto.MedicalRecordResponse, error) {
			// Caller is not a party to the appointment
			return nil, usecase.ErrAppointmentNotFound
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := authenticatedRequest(http.MethodGet, "/api/v1/appointments/9/medical-records", "", patientClaims(), map[string]string{"id": "9"})
	h.GetMedicalRecord(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
