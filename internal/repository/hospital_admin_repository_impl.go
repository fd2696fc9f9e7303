package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalAdminRepository struct{}

func NewHospitalAdminRepository() domainRepo.HospitalAdminRepository {
	return &hospitalAdminRepository{}
}

func (r *hospitalAdminRepository) Create(db *gorm.DB, profile *entity.HospitalAdminProfile) error {
	return db.Create(profile).Error
}

func (r *hospitalAdminRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdminProfile, error) {
	var profile entity.HospitalAdminProfile
	err := db.Preload("User").Preload("Hospital").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *hospitalAdminRepository) FindPending(db *gorm.DB) ([]entity.HospitalAdminProfile, error) {
	var profiles []entity.HospitalAdminProfile
	err := db.Preload("User").Preload("Hospital").
		Where("is_approved = ?", false).
		Order("user_id").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *hospitalAdminRepository) SetApproval(db *gorm.DB, userID uuid.UUID, approved bool) (int64, error) {
	result := db.Model(&entity.HospitalAdminProfile{}).
		Where("user_id = ? AND is_approved = ?", userID, !approved).
		Update("is_approved", approved)
	return result.RowsAffected, result.Error
}

func (r *hospitalAdminRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.HospitalAdminProfile{}).Error
}
