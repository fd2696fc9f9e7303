package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalAdminRepository interface {
	Create(db *gorm.DB, profile *entity.HospitalAdminProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdminProfile, error)
	FindPending(db *gorm.DB) ([]entity.HospitalAdminProfile, error)
	SetApproval(db *gorm.DB, userID uuid.UUID, approved bool) (int64, error)
	Delete(db *gorm.DB, userID uuid.UUID) error
}
