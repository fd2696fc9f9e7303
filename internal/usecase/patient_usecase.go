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

var ErrPatientNotFound = errors.New("patient profile not found")

type PatientUsecase interface {
	GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientProfileResponse, error)
	UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
	ListDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error)
	GetDashboard(ctx context.Context, patientID uuid.UUID) (*dto.PatientDashboardResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	patientRepo     repository.PatientProfileRepository
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientUsecase) GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Name changes land on the user row, the rest on the profile row
	if req.FirstName != "" || req.LastName != "" {
		if req.FirstName != "" {
			profile.User.FirstName = req.FirstName
		}
		if req.LastName != "" {
			profile.User.LastName = req.LastName
		}
		if err := u.userRepo.Update(tx, &profile.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		profile.DateOfBirth = &parsed
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.BloodType != "" {
		profile.BloodType = req.BloodType
	}
	if req.Allergies != "" {
		profile.Allergies = req.Allergies
	}
	if req.ChronicConditions != "" {
		profile.ChronicConditions = req.ChronicConditions
	}
	if req.InsuranceProvider != "" {
		profile.InsuranceProvider = req.InsuranceProvider
	}
	if req.InsuranceNumber != "" {
		profile.InsuranceNumber = req.InsuranceNumber
	}
	if req.EmergencyContactName != "" {
		profile.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		profile.EmergencyContactPhone = req.EmergencyContactPhone
	}

	if err := u.patientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &patientID, entity.AuditActionProfileUpdate, entity.JSON{
		"role": entity.RolePatient,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(profile), nil
}

func (u *patientUsecase) ListDoctors(ctx context.Context, hospitalCode string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindApprovedAvailable(u.db.WithContext(ctx), hospitalCode)
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

func (u *patientUsecase) GetDashboard(ctx context.Context, patientID uuid.UUID) (*dto.PatientDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	upcoming, err := u.appointmentRepo.CountByPatientAndStatus(db, patientID,
		entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed, entity.AppointmentStatusInProgress)
	if err != nil {
		u.log.Warnf("Failed to count upcoming appointments: %+v", err)
		return nil, err
	}

	completed, err := u.appointmentRepo.CountByPatientAndStatus(db, patientID, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments: %+v", err)
		return nil, err
	}

	next, err := u.appointmentRepo.FindNextForPatient(db, patientID, time.Now())
	if err != nil {
		u.log.Warnf("Failed to find next appointment: %+v", err)
		return nil, err
	}

	response := &dto.PatientDashboardResponse{
		UpcomingAppointments:  upcoming,
		CompletedAppointments: completed,
	}
	if next != nil {
		response.NextAppointment = converter.AppointmentToResponse(next, time.Now())
	}
	return response, nil
}
