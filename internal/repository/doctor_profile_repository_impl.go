package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

// inHospital is the single place the dual-path affiliation filter lives.
// Legacy rows have hospital_code NULL and only a numeric hospital_id.
func inHospital(hospitalCode string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"doctor_profiles.hospital_code = ? OR (doctor_profiles.hospital_code IS NULL AND doctor_profiles.hospital_id IN (SELECT id FROM hospitals WHERE code = ?))",
			hospitalCode, hospitalCode,
		)
	}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Hospital").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Save(profile).Error
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.DoctorProfile{}).Error
}

func (r *doctorProfileRepository) FindByHospitalCode(db *gorm.DB, hospitalCode string, approved bool) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").
		Scopes(inHospital(hospitalCode)).
		Where("doctor_profiles.is_approved = ?", approved).
		Order("doctor_profiles.user_id").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) FindApprovedAvailable(db *gorm.DB, hospitalCode string) ([]entity.DoctorProfile, error) {
	query := db.Preload("User").Preload("Hospital").
		Where("doctor_profiles.is_approved = ? AND doctor_profiles.is_available = ?", true, true)
	if hospitalCode != "" {
		query = query.Scopes(inHospital(hospitalCode))
	}

	var profiles []entity.DoctorProfile
	if err := query.Order("doctor_profiles.specialization").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) SetApproval(db *gorm.DB, userID uuid.UUID, approved bool) (int64, error) {
	result := db.Model(&entity.DoctorProfile{}).
		Where("user_id = ? AND is_approved = ?", userID, !approved).
		Update("is_approved", approved)
	return result.RowsAffected, result.Error
}

func (r *doctorProfileRepository) CountByHospitalCode(db *gorm.DB, hospitalCode string, approved bool) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorProfile{}).
		Scopes(inHospital(hospitalCode)).
		Where("doctor_profiles.is_approved = ?", approved).
		Count(&count).Error
	return count, err
}

func (r *doctorProfileRepository) CountPerHospital(db *gorm.DB) ([]entity.HospitalDoctorCount, error) {
	var counts []entity.HospitalDoctorCount
	err := db.Model(&entity.DoctorProfile{}).
		Select("COALESCE(doctor_profiles.hospital_code, hospitals.code) as hospital_code, COUNT(*) as doctor_count").
		Joins("LEFT JOIN hospitals ON hospitals.id = doctor_profiles.hospital_id").
		Where("doctor_profiles.is_approved = ?", true).
		Group("COALESCE(doctor_profiles.hospital_code, hospitals.code)").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
