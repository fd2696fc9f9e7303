package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdatePatientProfileRequest struct {
	FirstName             string `json:"first_name" validate:"omitempty,min=2"`
	LastName              string `json:"last_name" validate:"omitempty"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth           string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string `json:"gender" validate:"omitempty,oneof=M F"`
	Address               string `json:"address" validate:"omitempty"`
	BloodType             string `json:"blood_type" validate:"omitempty,max=5"`
	Allergies             string `json:"allergies" validate:"omitempty"`
	ChronicConditions     string `json:"chronic_conditions" validate:"omitempty"`
	InsuranceProvider     string `json:"insurance_provider" validate:"omitempty"`
	InsuranceNumber       string `json:"insurance_number" validate:"omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,min=10,max=20"`
}

type PatientProfileResponse struct {
	UserID                uuid.UUID  `json:"user_id"`
	Email                 string     `json:"email"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	PhoneNumber           string     `json:"phone_number,omitempty"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                string     `json:"gender,omitempty"`
	Address               string     `json:"address,omitempty"`
	BloodType             string     `json:"blood_type,omitempty"`
	Allergies             string     `json:"allergies,omitempty"`
	ChronicConditions     string     `json:"chronic_conditions,omitempty"`
	InsuranceProvider     string     `json:"insurance_provider,omitempty"`
	InsuranceNumber       string     `json:"insurance_number,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
}

type PatientDashboardResponse struct {
	UpcomingAppointments  int64                `json:"upcoming_appointments"`
	CompletedAppointments int64                `json:"completed_appointments"`
	NextAppointment       *AppointmentResponse `json:"next_appointment,omitempty"`
}
