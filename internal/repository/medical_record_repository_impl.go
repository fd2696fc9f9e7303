package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Where("appointment_id = ?", appointmentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) SubmitRating(db *gorm.DB, appointmentID int64, updates map[string]interface{}) (int64, error) {
	updates["rating_status"] = entity.RatingStatusSubmitted
	result := db.Model(&entity.MedicalRecord{}).
		Where("appointment_id = ? AND rating_status = ?", appointmentID, entity.RatingStatusPending).
		Updates(updates)
	return result.RowsAffected, result.Error
}

const ratingStatsSelect = `
	appointments.doctor_id as doctor_id,
	COUNT(*) as rating_count,
	AVG(medical_records.patient_rating) as avg_patient_rating,
	AVG(medical_records.doctor_rating) as avg_doctor_rating,
	AVG(medical_records.service_rating) as avg_service_rating,
	AVG(CASE WHEN medical_records.would_recommend THEN 100.0 ELSE 0.0 END) as recommend_percent`

func (r *medicalRecordRepository) RatingStatsByDoctor(db *gorm.DB) ([]entity.DoctorRatingStats, error) {
	var stats []entity.DoctorRatingStats
	err := db.Model(&entity.MedicalRecord{}).
		Select(ratingStatsSelect).
		Joins("JOIN appointments ON appointments.id = medical_records.appointment_id").
		Where("medical_records.rating_status = ?", entity.RatingStatusSubmitted).
		Group("appointments.doctor_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *medicalRecordRepository) RatingStatsForDoctor(db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorRatingStats, error) {
	var stats entity.DoctorRatingStats
	result := db.Model(&entity.MedicalRecord{}).
		Select(ratingStatsSelect).
		Joins("JOIN appointments ON appointments.id = medical_records.appointment_id").
		Where("medical_records.rating_status = ? AND appointments.doctor_id = ?", entity.RatingStatusSubmitted, doctorID).
		Group("appointments.doctor_id").
		Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return &entity.DoctorRatingStats{DoctorID: doctorID}, nil
	}
	return &stats, nil
}
