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
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentInPast      = errors.New("appointment date must be in the future")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use RFC3339")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrDoctorNotAvailable     = errors.New("doctor is not accepting appointments")
	ErrMedicalRecordNotFound  = errors.New("medical record not found")
	ErrRatingAlreadySubmitted = errors.New("rating has already been submitted")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	CancelByPatient(ctx context.Context, patientID uuid.UUID, appointmentID int64) error

	Approve(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error
	Start(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error
	CancelByDoctor(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error
	Complete(ctx context.Context, doctorID uuid.UUID, appointmentID int64, req *dto.CompleteAppointmentRequest) error

	GetMedicalRecord(ctx context.Context, userID uuid.UUID, roleID int, appointmentID int64) (*dto.MedicalRecordResponse, error)
	SubmitRating(ctx context.Context, patientID uuid.UUID, appointmentID int64, req *dto.SubmitRatingRequest) error
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	medicalRecordRepo repository.MedicalRecordRepository
	doctorRepo        repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		medicalRecordRepo: medicalRecordRepo,
		doctorRepo:        doctorRepo,
		auditService:      auditService,
	}
}

func (u *appointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if appointmentDate.Before(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	// Unapproved doctors are not bookable and not distinguishable from missing
	if doctor == nil || !doctor.IsApproved {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsAvailable {
		return nil, ErrDoctorNotAvailable
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: appointmentDate,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(u.db.WithContext(ctx), &patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID,
		"doctor_id":      req.DoctorID.String(),
	})

	return converter.AppointmentToResponse(appointment, time.Now()), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments, time.Now())
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) CancelByPatient(ctx context.Context, patientID uuid.UUID, appointmentID int64) error {
	rows, err := u.appointmentRepo.CancelOwnedByPatient(u.db.WithContext(ctx), appointmentID, patientID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(u.db.WithContext(ctx), &patientID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointmentID,
	})
	return nil
}

func (u *appointmentUsecase) Approve(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
	return u.transition(ctx, doctorID, appointmentID,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending},
		entity.AppointmentStatusConfirmed,
		entity.AuditActionAppointmentApprove)
}

func (u *appointmentUsecase) Start(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
	return u.transition(ctx, doctorID, appointmentID,
		entity.StartableStatuses(),
		entity.AppointmentStatusInProgress,
		entity.AuditActionAppointmentStart)
}

func (u *appointmentUsecase) CancelByDoctor(ctx context.Context, doctorID uuid.UUID, appointmentID int64) error {
	return u.transition(ctx, doctorID, appointmentID,
		entity.NonTerminalStatuses(),
		entity.AppointmentStatusCancelled,
		entity.AuditActionAppointmentCancel)
}

// transition runs a guarded doctor-side status move. A missing row, a row
// owned by another doctor and a row in the wrong status all surface the same
// not-found error.
func (u *appointmentUsecase) transition(ctx context.Context, doctorID uuid.UUID, appointmentID int64, from []entity.AppointmentStatus, to entity.AppointmentStatus, auditAction string) error {
	rows, err := u.appointmentRepo.TransitionOwned(u.db.WithContext(ctx), appointmentID, doctorID, from, to)
	if err != nil {
		u.log.Warnf("Failed to transition appointment to %s: %+v", to, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(u.db.WithContext(ctx), &doctorID, auditAction, entity.JSON{
		"appointment_id": appointmentID,
		"status":         string(to),
	})
	return nil
}

// Complete finishes an appointment, optionally writing the medical record in
// the same transaction. Without a medical payload only an in-progress session
// may complete; with one, any non-terminal appointment completes in one step.
func (u *appointmentUsecase) Complete(ctx context.Context, doctorID uuid.UUID, appointmentID int64, req *dto.CompleteAppointmentRequest) error {
	from := []entity.AppointmentStatus{entity.AppointmentStatusInProgress}
	if req.MedicalRecord != nil {
		from = entity.NonTerminalStatuses()
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.CompleteOwned(tx, appointmentID, doctorID, from, req.Notes)
	if err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	if req.MedicalRecord != nil {
		var followUp *time.Time
		if req.MedicalRecord.FollowUpDate != "" {
			parsed, err := time.Parse("2006-01-02", req.MedicalRecord.FollowUpDate)
			if err != nil {
				return ErrInvalidDateFormat
			}
			followUp = &parsed
		}

		now := time.Now()
		record := &entity.MedicalRecord{
			AppointmentID:       appointmentID,
			Symptoms:            req.MedicalRecord.Symptoms,
			Diagnosis:           req.MedicalRecord.Diagnosis,
			Treatment:           req.MedicalRecord.Treatment,
			PrescribedMedicines: req.MedicalRecord.PrescribedMedicines,
			FollowUpDate:        followUp,
			DoctorNotes:         req.MedicalRecord.DoctorNotes,
			SessionEndedAt:      &now,
			RatingStatus:        entity.RatingStatusPending,
		}
		if err := u.medicalRecordRepo.Create(tx, record); err != nil {
			u.log.Warnf("Failed to create medical record: %+v", err)
			return err
		}
	}

	u.auditService.Record(tx, &doctorID, entity.AuditActionAppointmentComplete, entity.JSON{
		"appointment_id": appointmentID,
		"with_record":    req.MedicalRecord != nil,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *appointmentUsecase) GetMedicalRecord(ctx context.Context, userID uuid.UUID, roleID int, appointmentID int64) (*dto.MedicalRecordResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || !ownsAppointment(appointment, userID, roleID) {
		return nil, ErrAppointmentNotFound
	}

	record, err := u.medicalRecordRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *appointmentUsecase) SubmitRating(ctx context.Context, patientID uuid.UUID, appointmentID int64, req *dto.SubmitRatingRequest) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil || appointment.PatientID != patientID {
		return ErrAppointmentNotFound
	}

	record, err := u.medicalRecordRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}
	if record.IsRated() {
		return ErrRatingAlreadySubmitted
	}

	updates := map[string]interface{}{}
	if req.PatientRating != nil {
		updates["patient_rating"] = decimal.NewFromFloat(*req.PatientRating).Round(1)
	}
	if req.DoctorRating != nil {
		updates["doctor_rating"] = decimal.NewFromFloat(*req.DoctorRating).Round(1)
	}
	if req.ServiceRating != nil {
		updates["service_rating"] = decimal.NewFromFloat(*req.ServiceRating).Round(1)
	}
	if req.Feedback != "" {
		updates["feedback"] = req.Feedback
	}
	if req.WouldRecommend != nil {
		updates["would_recommend"] = *req.WouldRecommend
	}

	// Conditional update keeps the gate race-safe: two concurrent submissions
	// cannot both pass the pending check.
	rows, err := u.medicalRecordRepo.SubmitRating(u.db.WithContext(ctx), appointmentID, updates)
	if err != nil {
		u.log.Warnf("Failed to submit rating: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrRatingAlreadySubmitted
	}

	u.auditService.Record(u.db.WithContext(ctx), &patientID, entity.AuditActionRatingSubmit, entity.JSON{
		"appointment_id": appointmentID,
	})
	return nil
}

// ownsAppointment checks caller visibility by role.
func ownsAppointment(appointment *entity.Appointment, userID uuid.UUID, roleID int) bool {
	switch roleID {
	case entity.RoleIDPatient:
		return appointment.PatientID == userID
	case entity.RoleIDDoctor:
		return appointment.DoctorID == userID
	}
	return false
}
