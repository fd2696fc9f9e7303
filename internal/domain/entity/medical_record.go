package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatingStatus gates the one-shot patient feedback on a completed appointment
type RatingStatus string

const (
	RatingStatusPending   RatingStatus = "pending"
	RatingStatusSubmitted RatingStatus = "submitted"
)

// MedicalRecord is written in the same transaction that completes its
// appointment, so a record row exists if and only if the appointment is
// completed. Rating fields are mutated exactly once by the patient.
type MedicalRecord struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID       int64      `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Symptoms            string     `gorm:"type:text" json:"symptoms,omitempty"`
	Diagnosis           string     `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment           string     `gorm:"type:text" json:"treatment,omitempty"`
	PrescribedMedicines string     `gorm:"type:text" json:"prescribed_medicines,omitempty"`
	FollowUpDate        *time.Time `gorm:"type:date" json:"follow_up_date,omitempty"`
	DoctorNotes         string     `gorm:"type:text" json:"doctor_notes,omitempty"`
	SessionStartedAt    *time.Time `json:"session_started_at,omitempty"`
	SessionEndedAt      *time.Time `json:"session_ended_at,omitempty"`

	// Patient-submitted rating sub-record (each score 1.0-5.0, any may be null)
	PatientRating  *decimal.Decimal `gorm:"type:decimal(2,1)" json:"patient_rating,omitempty"`
	DoctorRating   *decimal.Decimal `gorm:"type:decimal(2,1)" json:"doctor_rating,omitempty"`
	ServiceRating  *decimal.Decimal `gorm:"type:decimal(2,1)" json:"service_rating,omitempty"`
	Feedback       string           `gorm:"type:text" json:"feedback,omitempty"`
	WouldRecommend *bool            `json:"would_recommend,omitempty"`
	RatingStatus   RatingStatus     `gorm:"type:rating_status;not null;default:'pending'" json:"rating_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// IsRated reports whether the one-shot rating has been consumed.
func (m *MedicalRecord) IsRated() bool {
	return m.RatingStatus == RatingStatusSubmitted
}
