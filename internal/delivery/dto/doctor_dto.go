package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UpdateDoctorProfileRequest struct {
	Specialization  string   `json:"specialization" validate:"omitempty"`
	Biography       string   `json:"biography" validate:"omitempty"`
	ConsultationFee *float64 `json:"consultation_fee" validate:"omitempty,gte=0"`
}

// AdminUpdateDoctorRequest is the hospital-admin-side doctor mutation
// (name and availability only; approval has its own endpoint).
type AdminUpdateDoctorRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2"`
	LastName    string `json:"last_name" validate:"omitempty"`
	IsAvailable *bool  `json:"is_available" validate:"omitempty"`
}

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Specialization  string          `json:"specialization"`
	Biography       string          `json:"biography,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	IsApproved      bool            `json:"is_approved"`
	IsAvailable     bool            `json:"is_available"`
	HospitalID      *int            `json:"hospital_id,omitempty"`
	HospitalCode    string          `json:"hospital_code,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
