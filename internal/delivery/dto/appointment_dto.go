package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: 2006-01-02T15:04:05Z07:00
	Reason          string    `json:"reason" validate:"required,min=3"`
}

// MedicalRecordInput is the optional medical payload of the unified complete
// operation. When present, the record insert happens in the same transaction
// as the status update.
type MedicalRecordInput struct {
	Symptoms            string `json:"symptoms" validate:"omitempty"`
	Diagnosis           string `json:"diagnosis" validate:"omitempty"`
	Treatment           string `json:"treatment" validate:"omitempty"`
	PrescribedMedicines string `json:"prescribed_medicines" validate:"omitempty"`
	FollowUpDate        string `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	DoctorNotes         string `json:"doctor_notes" validate:"omitempty"`
}

type CompleteAppointmentRequest struct {
	Notes         string              `json:"notes" validate:"omitempty"`
	MedicalRecord *MedicalRecordInput `json:"medical_record" validate:"omitempty"`
}

type SubmitRatingRequest struct {
	PatientRating  *float64 `json:"patient_rating" validate:"omitempty,gte=1,lte=5"`
	DoctorRating   *float64 `json:"doctor_rating" validate:"omitempty,gte=1,lte=5"`
	ServiceRating  *float64 `json:"service_rating" validate:"omitempty,gte=1,lte=5"`
	Feedback       string   `json:"feedback" validate:"omitempty"`
	WouldRecommend *bool    `json:"would_recommend" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	IsOverdue       bool      `json:"is_overdue"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type MedicalRecordResponse struct {
	ID                  int64            `json:"id"`
	AppointmentID       int64            `json:"appointment_id"`
	Symptoms            string           `json:"symptoms,omitempty"`
	Diagnosis           string           `json:"diagnosis,omitempty"`
	Treatment           string           `json:"treatment,omitempty"`
	PrescribedMedicines string           `json:"prescribed_medicines,omitempty"`
	FollowUpDate        *time.Time       `json:"follow_up_date,omitempty"`
	DoctorNotes         string           `json:"doctor_notes,omitempty"`
	SessionStartedAt    *time.Time       `json:"session_started_at,omitempty"`
	SessionEndedAt      *time.Time       `json:"session_ended_at,omitempty"`
	PatientRating       *decimal.Decimal `json:"patient_rating,omitempty"`
	DoctorRating        *decimal.Decimal `json:"doctor_rating,omitempty"`
	ServiceRating       *decimal.Decimal `json:"service_rating,omitempty"`
	Feedback            string           `json:"feedback,omitempty"`
	WouldRecommend      *bool            `json:"would_recommend,omitempty"`
	RatingStatus        string           `json:"rating_status"`
	CreatedAt           time.Time        `json:"created_at"`
}
