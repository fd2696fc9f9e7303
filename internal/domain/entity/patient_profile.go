package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber           string     `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender                string     `gorm:"type:char(1)" json:"gender,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	BloodType             string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Allergies             string     `gorm:"type:text" json:"allergies,omitempty"`
	ChronicConditions     string     `gorm:"type:text" json:"chronic_conditions,omitempty"`
	InsuranceProvider     string     `gorm:"type:varchar(255)" json:"insurance_provider,omitempty"`
	InsuranceNumber       string     `gorm:"type:varchar(100)" json:"insurance_number,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
