package jwt

import (
	"errors"
	"time"

	"hospital-appointment-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carries the caller's full authorization scope so no profile lookup
// runs per request. A profile change (e.g. re-affiliating a doctor) is not
// visible until the token is reissued at next login; the expiry window bounds
// that staleness.
type Claims struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	RoleID       int       `json:"role_id"`
	Role         string    `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	HospitalID   *int      `json:"hospital_id,omitempty"`
	HospitalCode string    `json:"hospital_code,omitempty"`
	TokenType    TokenType `json:"token_type"`
	TokenID      string    `json:"token_id"`
	jwt.RegisteredClaims
}

// Identity is the role-scoped payload baked into every issued token.
type Identity struct {
	UserID       uuid.UUID
	Email        string
	RoleID       int
	Role         string
	FirstName    string
	LastName     string
	HospitalID   *int
	HospitalCode string
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateAccessToken(identity Identity) (string, string, error) {
	return s.generate(identity, AccessToken, s.config.AccessExpiry)
}

func (s *JWTService) GenerateRefreshToken(identity Identity) (string, string, error) {
	return s.generate(identity, RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) generate(identity Identity, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:       identity.UserID,
		Email:        identity.Email,
		RoleID:       identity.RoleID,
		Role:         identity.Role,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		HospitalID:   identity.HospitalID,
		HospitalCode: identity.HospitalCode,
		TokenType:    tokenType,
		TokenID:      tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}
