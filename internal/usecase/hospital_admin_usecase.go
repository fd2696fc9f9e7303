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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorAlreadyApproved = errors.New("doctor is already approved")
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyReviewed  = errors.New("leave request has already been reviewed")
)

// HospitalAdminUsecase scopes every doctor-side operation to the admin's own
// hospital. A doctor outside that hospital is indistinguishable from a
// missing one.
type HospitalAdminUsecase interface {
	ListPendingDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error)
	ListApprovedDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error)
	ApproveDoctor(ctx context.Context, adminID uuid.UUID, hospitalCode string, doctorID uuid.UUID) error
	RejectDoctor(ctx context.Context, adminID uuid.UUID, hospitalCode string, doctorID uuid.UUID) error
	UpdateDoctor(ctx context.Context, adminID uuid.UUID, hospitalCode string, doctorID uuid.UUID, req *dto.AdminUpdateDoctorRequest) (*dto.DoctorResponse, error)

	ListLeaveRequests(ctx context.Context, hospitalCode string) (*dto.LeaveRequestListResponse, error)
	ReviewLeaveRequest(ctx context.Context, adminID uuid.UUID, hospitalCode string, leaveID int64, approve bool) error

	GetDashboard(ctx context.Context, hospitalCode string) (*dto.AdminDashboardResponse, error)
}

type hospitalAdminUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
	leaveRepo       repository.LeaveRequestRepository
	auditService    service.AuditService
}

func NewHospitalAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	leaveRepo repository.LeaveRequestRepository,
	auditService service.AuditService,
) HospitalAdminUsecase {
	return &hospitalAdminUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		leaveRepo:       leaveRepo,
		auditService:    auditService,
	}
}

func (u *hospitalAdminUsecase) ListPendingDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error) {
	return u.listDoctors(ctx, hospitalCode, false)
}

func (u *hospitalAdminUsecase) ListApprovedDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error) {
	return u.listDoctors(ctx, hospitalCode, true)
}

func (u *hospitalAdminUsecase) listDoctors(ctx context.Context, hospitalCode string, approved bool) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindByHospitalCode(u.db.WithContext(ctx), hospitalCode, approved)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

// findScopedDoctor loads a doctor visible to the admin's hospital.
func (u *hospitalAdminUsecase) findScopedDoctor(ctx context.Context, hospitalCode string, doctorID uuid.UUID) (*entity.DoctorProfile, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctorAffiliatedWith(doctor, hospitalCode) {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (u *hospitalAdminUsecase) ApproveDoctor(ctx context.Context, adminID uuid.UUID, hospitalCode string, doctorID uuid.UUID) error {
	if _, err := u.findScopedDoctor(ctx, hospitalCode, doctorID); err != nil {
		return err
	}

	rows, err := u.doctorRepo.SetApproval(u.db.WithContext(ctx), doctorID, true)
	if err != nil {
		u.log.Warnf("Failed to approve doctor: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDoctorAlreadyApproved
	}

	u.auditService.Record(u.db.WithContext(ctx), &adminID, entity.AuditActionDoctorApprove, entity.JSON{
		"doctor_id": doctorID.String(),
	})
	return nil
}

// RejectDoctor removes a pending registration entirely. Approved doctors
// cannot be rejected, only deactivated via availability.
func (u *hospitalAdminUsecase) RejectDoctor(ctx context.Context, adminID uuid.UUID, hospitalCode string, doctorID uuid.UUID) error {
	doctor, err := u.findScopedDoctor(ctx, hospitalCode, doctorID)
	if err != nil {
		return err
	}
	if doctor.IsApproved {
		return ErrDoctorAlreadyApproved
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Delete(tx, doctorID); err != nil {
		u.log.Warnf("Failed to delete doctor profile: %+v", err)
		return err
	}
	if err := u.userRepo.Delete(tx, doctorID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	u.auditService.Record(tx, &adminID, entity.AuditActionDoctorReject, entity.JSON{
		"doctor_id": doctorID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *hospitalAdminUsecase) UpdateDoctor(ctx context.Context, adminID uuid.UUID, hospitalCode string, doctorID uuid.UUID, req *dto.AdminUpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.findScopedDoctor(ctx, hospitalCode, doctorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.FirstName != "" || req.LastName != "" {
		if req.FirstName != "" {
			doctor.User.FirstName = req.FirstName
		}
		if req.LastName != "" {
			doctor.User.LastName = req.LastName
		}
		if err := u.userRepo.Update(tx, &doctor.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if req.IsAvailable != nil {
		doctor.IsAvailable = *req.IsAvailable
	}
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &adminID, entity.AuditActionProfileUpdate, entity.JSON{
		"doctor_id": doctorID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *hospitalAdminUsecase) ListLeaveRequests(ctx context.Context, hospitalCode string) (*dto.LeaveRequestListResponse, error) {
	doctorIDs, err := u.hospitalDoctorIDs(ctx, hospitalCode)
	if err != nil {
		return nil, err
	}

	requests, err := u.leaveRepo.FindByDoctorIDs(u.db.WithContext(ctx), doctorIDs)
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

func (u *hospitalAdminUsecase) ReviewLeaveRequest(ctx context.Context, adminID uuid.UUID, hospitalCode string, leaveID int64, approve bool) error {
	request, err := u.leaveRepo.FindByID(u.db.WithContext(ctx), leaveID)
	if err != nil {
		u.log.Warnf("Failed to find leave request: %+v", err)
		return err
	}
	if request == nil {
		return ErrLeaveRequestNotFound
	}

	if _, err := u.findScopedDoctor(ctx, hospitalCode, request.DoctorID); err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return ErrLeaveRequestNotFound
		}
		return err
	}

	status := entity.LeaveStatusRejected
	if approve {
		status = entity.LeaveStatusApproved
	}
	rows, err := u.leaveRepo.Review(u.db.WithContext(ctx), leaveID, status, adminID)
	if err != nil {
		u.log.Warnf("Failed to review leave request: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrLeaveAlreadyReviewed
	}

	u.auditService.Record(u.db.WithContext(ctx), &adminID, entity.AuditActionLeaveReview, entity.JSON{
		"leave_request_id": leaveID,
		"status":           string(status),
	})
	return nil
}

func (u *hospitalAdminUsecase) GetDashboard(ctx context.Context, hospitalCode string) (*dto.AdminDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	approved, err := u.doctorRepo.CountByHospitalCode(db, hospitalCode, true)
	if err != nil {
		u.log.Warnf("Failed to count approved doctors: %+v", err)
		return nil, err
	}
	pending, err := u.doctorRepo.CountByHospitalCode(db, hospitalCode, false)
	if err != nil {
		u.log.Warnf("Failed to count pending doctors: %+v", err)
		return nil, err
	}

	doctorIDs, err := u.hospitalDoctorIDs(ctx, hospitalCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todays, err := u.appointmentRepo.CountByDoctorIDsAndRange(db, doctorIDs, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	pendingLeaves, err := u.leaveRepo.CountPendingByDoctorIDs(db, doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to count pending leaves: %+v", err)
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		ApprovedDoctors:    approved,
		PendingDoctors:     pending,
		TodaysAppointments: todays,
		PendingLeaves:      pendingLeaves,
	}, nil
}

func (u *hospitalAdminUsecase) hospitalDoctorIDs(ctx context.Context, hospitalCode string) ([]uuid.UUID, error) {
	doctors, err := u.doctorRepo.FindByHospitalCode(u.db.WithContext(ctx), hospitalCode, true)
	if err != nil {
		u.log.Warnf("Failed to find hospital doctors: %+v", err)
		return nil, err
	}

	ids := make([]uuid.UUID, len(doctors))
	for i := range doctors {
		ids[i] = doctors[i].UserID
	}
	return ids, nil
}

// doctorAffiliatedWith resolves the dual-path affiliation in memory: a row
// carrying the code wins, otherwise the legacy hospital_id link decides.
func doctorAffiliatedWith(profile *entity.DoctorProfile, hospitalCode string) bool {
	if profile.HospitalCode != nil {
		return *profile.HospitalCode == hospitalCode
	}
	return profile.Hospital != nil && profile.Hospital.Code == hospitalCode
}
