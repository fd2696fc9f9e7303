package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type leaveRequestRepository struct{}

func NewLeaveRequestRepository() domainRepo.LeaveRequestRepository {
	return &leaveRequestRepository{}
}

func (r *leaveRequestRepository) Create(db *gorm.DB, request *entity.DoctorLeaveRequest) error {
	return db.Create(request).Error
}

func (r *leaveRequestRepository) FindByID(db *gorm.DB, id int64) (*entity.DoctorLeaveRequest, error) {
	var request entity.DoctorLeaveRequest
	err := db.Preload("Doctor.User").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *leaveRequestRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorLeaveRequest, error) {
	var requests []entity.DoctorLeaveRequest
	err := db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRequestRepository) FindByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) ([]entity.DoctorLeaveRequest, error) {
	if len(doctorIDs) == 0 {
		return []entity.DoctorLeaveRequest{}, nil
	}
	var requests []entity.DoctorLeaveRequest
	err := db.Preload("Doctor.User").
		Where("doctor_id IN ?", doctorIDs).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRequestRepository) Review(db *gorm.DB, id int64, status entity.LeaveStatus, reviewerID uuid.UUID) (int64, error) {
	result := db.Model(&entity.DoctorLeaveRequest{}).
		Where("id = ? AND status = ?", id, entity.LeaveStatusPending).
		Updates(map[string]interface{}{"status": status, "reviewed_by": reviewerID})
	return result.RowsAffected, result.Error
}

func (r *leaveRequestRepository) CountPendingByDoctorIDs(db *gorm.DB, doctorIDs []uuid.UUID) (int64, error) {
	if len(doctorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(&entity.DoctorLeaveRequest{}).
		Where("doctor_id IN ? AND status = ?", doctorIDs, entity.LeaveStatusPending).
		Count(&count).Error
	return count, err
}
