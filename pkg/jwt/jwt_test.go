package jwt_test

import (
	"testing"
	"time"

	"hospital-appointment-api/config"
	"hospital-appointment-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	service := newService("test-secret")

	hospitalID := 7
	identity := jwt.Identity{
		UserID:       uuid.New(),
		Email:        "admin@hospital.test",
		RoleID:       2,
		Role:         "hospital_admin",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		HospitalID:   &hospitalID,
		HospitalCode: "RS001",
	}

	token, tokenID, err := service.GenerateAccessToken(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, identity.UserID, claims.UserID)
	assert.Equal(t, identity.Email, claims.Email)
	assert.Equal(t, identity.RoleID, claims.RoleID)
	assert.Equal(t, identity.Role, claims.Role)
	assert.Equal(t, identity.HospitalCode, claims.HospitalCode)
	require.NotNil(t, claims.HospitalID)
	assert.Equal(t, hospitalID, *claims.HospitalID)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	service := newService("test-secret")

	token, _, err := service.GenerateRefreshToken(jwt.Identity{UserID: uuid.New(), RoleID: 4, Role: "patient"})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, claims.TokenType)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newService("secret-a").GenerateAccessToken(jwt.Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = newService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := newService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
