package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusCount is a grouped appointment count per lifecycle status.
type StatusCount struct {
	Status AppointmentStatus `json:"status"`
	Count  int64             `json:"count"`
}

// DoctorRatingStats holds on-read rating aggregates for one doctor.
// Nothing is aggregated at submission time.
type DoctorRatingStats struct {
	DoctorID         uuid.UUID        `json:"doctor_id"`
	RatingCount      int64            `json:"rating_count"`
	AvgPatientRating *decimal.Decimal `json:"avg_patient_rating,omitempty"`
	AvgDoctorRating  *decimal.Decimal `json:"avg_doctor_rating,omitempty"`
	AvgServiceRating *decimal.Decimal `json:"avg_service_rating,omitempty"`
	RecommendPercent *decimal.Decimal `json:"recommend_percent,omitempty"`
}

// HospitalDoctorCount is a grouped doctor count per hospital code.
type HospitalDoctorCount struct {
	HospitalCode string `json:"hospital_code"`
	DoctorCount  int64  `json:"doctor_count"`
}
