package dto

import (
	"time"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

type HospitalAdminResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	HospitalID   int       `json:"hospital_id"`
	HospitalCode string    `json:"hospital_code"`
	HospitalName string    `json:"hospital_name,omitempty"`
	IsApproved   bool      `json:"is_approved"`
}

type HospitalAdminListResponse struct {
	Admins []HospitalAdminResponse `json:"admins"`
	Total  int                     `json:"total"`
}

// AdminDashboardResponse holds the hospital admin dashboard counts.
type AdminDashboardResponse struct {
	ApprovedDoctors    int64 `json:"approved_doctors"`
	PendingDoctors     int64 `json:"pending_doctors"`
	TodaysAppointments int64 `json:"todays_appointments"`
	PendingLeaves      int64 `json:"pending_leaves"`
}

// AnalyticsResponse holds the super-admin rollups, all computed on read.
type AnalyticsResponse struct {
	AppointmentsByStatus []entity.StatusCount         `json:"appointments_by_status"`
	DoctorsPerHospital   []entity.HospitalDoctorCount `json:"doctors_per_hospital"`
	DoctorRatings        []entity.DoctorRatingStats   `json:"doctor_ratings"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	UserEmail string                 `json:"user_email,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
