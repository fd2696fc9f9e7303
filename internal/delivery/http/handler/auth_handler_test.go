package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/delivery/http/handler"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	registerPatientFn func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	loginFn           func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

func (s *stubAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	return s.registerPatientFn(ctx, req)
}

func (s *stubAuthUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) RegisterHospitalAdmin(ctx context.Context, req *dto.RegisterHospitalAdminRequest) (*dto.UserResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	h := handler.NewAuthHandler(&stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			// Usecase answers identically for unknown email and wrong password
			return nil, usecase.ErrInvalidCredentials
		},
	}, validator.NewValidator())

	bodies := make([]string, 0, 2)
	for _, payload := range []string{
		`{"email":"nobody@test.dev","password":"whatever1"}`,
		`{"email":"known@test.dev","password":"wrong-password"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload))
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}

func TestLoginPendingApprovalForbidden(t *testing.T) {
	h := handler.NewAuthHandler(&stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrDoctorPendingApproval
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"doc@test.dev","password":"secret1"}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "pending")
}

func TestLoginValidationFailure(t *testing.T) {
	h := handler.NewAuthHandler(&stubAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			t.Fatal("usecase must not be called on validation failure")
			return nil, nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email","password":""}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterPatientSuccess(t *testing.T) {
	h := handler.NewAuthHandler(&stubAuthUsecase{
		registerPatientFn: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
			return &dto.UserResponse{
				ID:        uuid.New(),
				Email:     req.Email,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Role:      "patient",
				Message:   "Registration successful. You can log in now.",
			}, nil
		},
	}, validator.NewValidator())

	payload := `{"email":"jane@test.dev","password":"secret1","first_name":"Jane","last_name":"Doe"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register/patient", strings.NewReader(payload))
	h.RegisterPatient(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	h := handler.NewAuthHandler(&stubAuthUsecase{
		registerPatientFn: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	}, validator.NewValidator())

	payload := `{"email":"jane@test.dev","password":"secret1","first_name":"Jane","last_name":"Doe"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register/patient", strings.NewReader(payload))
	h.RegisterPatient(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
