package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorProfileRepository owns the dual-path hospital affiliation filter:
// a doctor is "in" a hospital when its row carries the hospital code directly,
// or when its legacy hospital_id resolves to a hospital with that code.
type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) error

	FindByHospitalCode(db *gorm.DB, hospitalCode string, approved bool) ([]entity.DoctorProfile, error)
	FindApprovedAvailable(db *gorm.DB, hospitalCode string) ([]entity.DoctorProfile, error)
	SetApproval(db *gorm.DB, userID uuid.UUID, approved bool) (int64, error)
	CountByHospitalCode(db *gorm.DB, hospitalCode string, approved bool) (int64, error)
	CountPerHospital(db *gorm.DB) ([]entity.HospitalDoctorCount, error)
}
