package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequestRepository interface {
	Create(db *gorm.DB, request *entity.DoctorLeaveRequest) error
	FindByID(db *gorm.DB, id int64) (*entity.DoctorLeaveRequest, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorLeaveRequest, error)
	FindByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) ([]entity.DoctorLeaveRequest, error)

	// Review resolves a pending request. Zero affected rows means the request
	// is missing or no longer pending.
	Review(db *gorm.DB, id int64, status entity.LeaveStatus, reviewerID uuid.UUID) (int64, error)
	CountPendingByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (int64, error)
}
