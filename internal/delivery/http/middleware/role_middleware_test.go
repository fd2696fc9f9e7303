package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-appointment-api/internal/delivery/http/middleware"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	claims := &jwt.Claims{UserID: uuid.New(), RoleID: roleID}
	return req.WithContext(middleware.WithClaims(req.Context(), claims))
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	middleware.RequireDoctor(next).ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a forbidden role")
	})

	rec := httptest.NewRecorder()
	middleware.RequireSuperAdmin(next).ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without claims")
	})

	rec := httptest.NewRecorder()
	middleware.RequirePatient(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePatientOrDoctorAllowsBoth(t *testing.T) {
	for _, roleID := range []int{entity.RoleIDPatient, entity.RoleIDDoctor} {
		rec := httptest.NewRecorder()
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		middleware.RequirePatientOrDoctor(next).ServeHTTP(rec, requestWithRole(roleID))
		assert.True(t, called)
	}
}
