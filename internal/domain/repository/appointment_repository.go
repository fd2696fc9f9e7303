package repository

import (
	"time"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository guards every doctor-side mutation with the owning
// doctor_id in the WHERE clause. Zero affected rows means "not found or
// unauthorized" and callers must not distinguish the two.
type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, day time.Time) ([]entity.Appointment, error)
	FindUpcomingByDoctor(db *gorm.DB, doctorID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error)

	// TransitionOwned moves an owned appointment between statuses. Returns the
	// number of affected rows (0 = not found, not owned, or wrong status).
	TransitionOwned(db *gorm.DB, id int64, doctorID uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error)
	// CompleteOwned is TransitionOwned to completed with notes merged in.
	CompleteOwned(db *gorm.DB, id int64, doctorID uuid.UUID, from []entity.AppointmentStatus, notes string) (int64, error)
	CancelOwnedByPatient(db *gorm.DB, id int64, patientID uuid.UUID) (int64, error)

	CountByStatus(db *gorm.DB) ([]entity.StatusCount, error)
	CountByPatientAndStatus(db *gorm.DB, patientID uuid.UUID, statuses ...entity.AppointmentStatus) (int64, error)
	CountByDoctorIDsAndRange(db *gorm.DB, doctorIDs []uuid.UUID, from, to time.Time) (int64, error)
	FindNextForPatient(db *gorm.DB, patientID uuid.UUID, after time.Time) (*entity.Appointment, error)
}
