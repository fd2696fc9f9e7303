package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data.
//
// Hospital affiliation is a migration residue: newer rows carry HospitalCode
// directly, older rows carry only HospitalID. Reads must accept either path
// (see DoctorProfileRepository.FindByHospitalCode).
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography       string          `gorm:"type:text" json:"biography,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	IsApproved      bool            `gorm:"not null;default:false;index" json:"is_approved"`
	IsAvailable     bool            `gorm:"not null;default:true" json:"is_available"`
	HospitalID      *int            `gorm:"index" json:"hospital_id,omitempty"`
	HospitalCode    *string         `gorm:"type:varchar(50);index" json:"hospital_code,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital     *Hospital     `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
