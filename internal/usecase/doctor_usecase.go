package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-appointment-api/internal/converter"
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/repository"
	"hospital-appointment-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLeaveDatesInvalid = errors.New("leave end date must not be before start date")
	ErrLeaveInPast       = errors.New("leave start date must not be in the past")
)

// DoctorUsecase covers the doctor's own profile, rating aggregates and leave
// requests. Schedule and appointment transitions live in their own usecases.
type DoctorUsecase interface {
	GetProfile(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	GetRatingStats(ctx context.Context, doctorID uuid.UUID) (*entity.DoctorRatingStats, error)
	RequestLeave(ctx context.Context, doctorID uuid.UUID, req *dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, doctorID uuid.UUID) (*dto.LeaveRequestListResponse, error)
}

type doctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorRepo        repository.DoctorProfileRepository
	medicalRecordRepo repository.MedicalRecordRepository
	leaveRepo         repository.LeaveRequestRepository
	auditService      service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	leaveRepo repository.LeaveRequestRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                db,
		log:               log,
		doctorRepo:        doctorRepo,
		medicalRecordRepo: medicalRecordRepo,
		leaveRepo:         leaveRepo,
		auditService:      auditService,
	}
}

func (u *doctorUsecase) GetProfile(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Biography != "" {
		doctor.Biography = req.Biography
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = decimal.NewFromFloat(*req.ConsultationFee)
	}

	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), &doctorID, entity.AuditActionProfileUpdate, entity.JSON{
		"role": entity.RoleDoctor,
	})

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetRatingStats(ctx context.Context, doctorID uuid.UUID) (*entity.DoctorRatingStats, error) {
	stats, err := u.medicalRecordRepo.RatingStatsForDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load rating stats: %+v", err)
		return nil, err
	}
	if stats == nil {
		stats = &entity.DoctorRatingStats{DoctorID: doctorID}
	}
	return stats, nil
}

func (u *doctorUsecase) RequestLeave(ctx context.Context, doctorID uuid.UUID, req *dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrLeaveDatesInvalid
	}

	today := time.Now().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		return nil, ErrLeaveInPast
	}

	request := &entity.DoctorLeaveRequest{
		DoctorID:  doctorID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    entity.LeaveStatusPending,
	}
	if err := u.leaveRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create leave request: %+v", err)
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), &doctorID, entity.AuditActionLeaveRequest, entity.JSON{
		"leave_request_id": request.ID,
	})

	return converter.LeaveRequestToResponse(request), nil
}

func (u *doctorUsecase) ListLeaveRequests(ctx context.Context, doctorID uuid.UUID) (*dto.LeaveRequestListResponse, error) {
	requests, err := u.leaveRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list leave requests: %+v", err)
		return nil, err
	}

	responses := converter.LeaveRequestsToResponses(requests)
	return &dto.LeaveRequestListResponse{
		LeaveRequests: responses,
		Total:         len(responses),
	}, nil
}
