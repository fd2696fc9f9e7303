package entity

import "github.com/google/uuid"

// HospitalAdminProfile represents hospital-admin-specific profile data
type HospitalAdminProfile struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	HospitalID   int       `gorm:"not null;index" json:"hospital_id"`
	HospitalCode string    `gorm:"type:varchar(50);not null;index" json:"hospital_code"`
	IsApproved   bool      `gorm:"not null;default:false;index" json:"is_approved"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (HospitalAdminProfile) TableName() string {
	return "hospital_admin_profiles"
}
