package usecase

import (
	"context"
	"errors"

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
	ErrHospitalAdminNotFound        = errors.New("hospital admin not found")
	ErrHospitalAdminAlreadyApproved = errors.New("hospital admin is already approved")
	ErrHospitalCodeExists           = errors.New("hospital code already exists")
)

type SuperAdminUsecase interface {
	ListPendingAdmins(ctx context.Context) (*dto.HospitalAdminListResponse, error)
	ApproveAdmin(ctx context.Context, superAdminID, adminID uuid.UUID) error
	RejectAdmin(ctx context.Context, superAdminID, adminID uuid.UUID) error

	CreateHospital(ctx context.Context, superAdminID uuid.UUID, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)

	GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error)
	ListAuditLogs(ctx context.Context, action string, limit, offset int) (*dto.AuditLogListResponse, error)
}

type superAdminUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	hospitalAdminRepo repository.HospitalAdminRepository
	hospitalRepo      repository.HospitalRepository
	appointmentRepo   repository.AppointmentRepository
	doctorRepo        repository.DoctorProfileRepository
	medicalRecordRepo repository.MedicalRecordRepository
	auditRepo         repository.AuditLogRepository
	auditService      service.AuditService
}

func NewSuperAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalAdminRepo repository.HospitalAdminRepository,
	hospitalRepo repository.HospitalRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
) SuperAdminUsecase {
	return &superAdminUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		hospitalAdminRepo: hospitalAdminRepo,
		hospitalRepo:      hospitalRepo,
		appointmentRepo:   appointmentRepo,
		doctorRepo:        doctorRepo,
		medicalRecordRepo: medicalRecordRepo,
		auditRepo:         auditRepo,
		auditService:      auditService,
	}
}

func (u *superAdminUsecase) ListPendingAdmins(ctx context.Context) (*dto.HospitalAdminListResponse, error) {
	admins, err := u.hospitalAdminRepo.FindPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pending hospital admins: %+v", err)
		return nil, err
	}

	responses := converter.HospitalAdminsToResponses(admins)
	return &dto.HospitalAdminListResponse{
		Admins: responses,
		Total:  len(responses),
	}, nil
}

func (u *superAdminUsecase) ApproveAdmin(ctx context.Context, superAdminID, adminID uuid.UUID) error {
	profile, err := u.hospitalAdminRepo.FindByUserID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find hospital admin profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrHospitalAdminNotFound
	}

	rows, err := u.hospitalAdminRepo.SetApproval(u.db.WithContext(ctx), adminID, true)
	if err != nil {
		u.log.Warnf("Failed to approve hospital admin: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrHospitalAdminAlreadyApproved
	}

	u.auditService.Record(u.db.WithContext(ctx), &superAdminID, entity.AuditActionHospitalAdminApprove, entity.JSON{
		"admin_id": adminID.String(),
	})
	return nil
}

// RejectAdmin removes a pending hospital admin registration entirely.
func (u *superAdminUsecase) RejectAdmin(ctx context.Context, superAdminID, adminID uuid.UUID) error {
	profile, err := u.hospitalAdminRepo.FindByUserID(u.db.WithContext(ctx), adminID)
	if err != nil {
		u.log.Warnf("Failed to find hospital admin profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrHospitalAdminNotFound
	}
	if profile.IsApproved {
		return ErrHospitalAdminAlreadyApproved
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.hospitalAdminRepo.Delete(tx, adminID); err != nil {
		u.log.Warnf("Failed to delete hospital admin profile: %+v", err)
		return err
	}
	if err := u.userRepo.Delete(tx, adminID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	u.auditService.Record(tx, &superAdminID, entity.AuditActionHospitalAdminReject, entity.JSON{
		"admin_id": adminID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *superAdminUsecase) CreateHospital(ctx context.Context, superAdminID uuid.UUID, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital := &entity.Hospital{
		Name:    req.Name,
		Code:    req.Code,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := u.hospitalRepo.Create(u.db.WithContext(ctx), hospital); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrHospitalCodeExists
		}
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), &superAdminID, entity.AuditActionHospitalCreate, entity.JSON{
		"hospital_code": hospital.Code,
	})

	return converter.HospitalToResponse(hospital), nil
}

func (u *superAdminUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)
	return &dto.HospitalListResponse{
		Hospitals: responses,
		Total:     len(responses),
	}, nil
}

// GetAnalytics computes every rollup on read; nothing is pre-aggregated.
func (u *superAdminUsecase) GetAnalytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	db := u.db.WithContext(ctx)

	byStatus, err := u.appointmentRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	perHospital, err := u.doctorRepo.CountPerHospital(db)
	if err != nil {
		u.log.Warnf("Failed to count doctors per hospital: %+v", err)
		return nil, err
	}

	ratings, err := u.medicalRecordRepo.RatingStatsByDoctor(db)
	if err != nil {
		u.log.Warnf("Failed to load rating stats: %+v", err)
		return nil, err
	}

	return &dto.AnalyticsResponse{
		AppointmentsByStatus: byStatus,
		DoctorsPerHospital:   perHospital,
		DoctorRatings:        ratings,
	}, nil
}

func (u *superAdminUsecase) ListAuditLogs(ctx context.Context, action string, limit, offset int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := u.auditRepo.FindRecent(u.db.WithContext(ctx), action, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	responses := converter.AuditLogsToResponses(logs)
	return &dto.AuditLogListResponse{
		Logs:  responses,
		Total: len(responses),
	}, nil
}
