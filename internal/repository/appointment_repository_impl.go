package repository

import (
	"errors"
	"time"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, day time.Time) ([]entity.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date < ?", doctorID, dayStart, dayEnd).
		Order("appointment_date").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByDoctor(db *gorm.DB, doctorID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ? AND appointment_date > ? AND status NOT IN ?",
			doctorID, after, []entity.AppointmentStatus{entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled}).
		Order("appointment_date").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) TransitionOwned(db *gorm.DB, id int64, doctorID uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND doctor_id = ? AND status IN ?", id, doctorID, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CompleteOwned(db *gorm.DB, id int64, doctorID uuid.UUID, from []entity.AppointmentStatus, notes string) (int64, error) {
	updates := map[string]interface{}{"status": entity.AppointmentStatusCompleted}
	if notes != "" {
		updates["notes"] = gorm.Expr("CASE WHEN notes IS NULL OR notes = '' THEN ? ELSE notes || E'\\n' || ? END", notes, notes)
	}
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND doctor_id = ? AND status IN ?", id, doctorID, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CancelOwnedByPatient(db *gorm.DB, id int64, patientID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND patient_id = ? AND status IN ?", id, patientID, entity.NonTerminalStatuses()).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB) ([]entity.StatusCount, error) {
	var counts []entity.StatusCount
	err := db.Model(&entity.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *appointmentRepository) CountByPatientAndStatus(db *gorm.DB, patientID uuid.UUID, statuses ...entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND status IN ?", patientID, statuses).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDoctorIDsAndRange(db *gorm.DB, doctorIDs []uuid.UUID, from, to time.Time) (int64, error) {
	if len(doctorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id IN ? AND appointment_date >= ? AND appointment_date < ?", doctorIDs, from, to).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindNextForPatient(db *gorm.DB, patientID uuid.UUID, after time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ? AND appointment_date > ? AND status IN ?",
			patientID, after, []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}).
		Order("appointment_date").
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}
