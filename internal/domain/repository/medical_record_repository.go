package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.MedicalRecord, error)

	// SubmitRating applies rating fields only while rating_status is still
	// pending. Zero affected rows means the one-shot gate already fired.
	SubmitRating(db *gorm.DB, appointmentID int64, updates map[string]interface{}) (int64, error)

	RatingStatsByDoctor(db *gorm.DB) ([]entity.DoctorRatingStats, error)
	RatingStatsForDoctor(db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorRatingStats, error)
}
