package usecase

import (
	"context"
	"time"

	"hospital-appointment-api/internal/converter"
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Slot grid boundaries: half-hour slots from 08:00 through 17:00 inclusive,
// with the noon slot reserved for lunch.
const (
	slotTimeLayout = "3:04 PM"
	lunchSlot      = "12:00 PM"
	lunchLabel     = "Lunch Break"
	gridStartHour  = 8
	gridEndHour    = 17
	upcomingLimit  = 10
)

type ScheduleUsecase interface {
	GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID, day time.Time) (*dto.DoctorScheduleResponse, error)
	SetAvailability(ctx context.Context, doctorID uuid.UUID, available bool) error
}

type scheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *scheduleUsecase) GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID, day time.Time) (*dto.DoctorScheduleResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	dayAppointments, err := u.appointmentRepo.FindByDoctorAndDay(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find day appointments: %+v", err)
		return nil, err
	}

	now := time.Now()
	upcoming, err := u.appointmentRepo.FindUpcomingByDoctor(u.db.WithContext(ctx), doctorID, now, upcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	doctorInfo := dto.DoctorInfo{
		ID:             doctor.UserID,
		FullName:       doctor.User.FullName(),
		Specialization: doctor.Specialization,
	}
	if doctor.HospitalCode != nil {
		doctorInfo.HospitalCode = *doctor.HospitalCode
	} else if doctor.Hospital != nil {
		doctorInfo.HospitalCode = doctor.Hospital.Code
	}

	return &dto.DoctorScheduleResponse{
		DoctorInfo:           doctorInfo,
		TodayAppointments:    converter.AppointmentsToResponses(dayAppointments, now),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming, now),
		ScheduleGrid:         BuildScheduleGrid(dayAppointments),
		QuickSettings:        dto.QuickSettings{IsAvailable: doctor.IsAvailable},
	}, nil
}

func (u *scheduleUsecase) SetAvailability(ctx context.Context, doctorID uuid.UUID, available bool) error {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	doctor.IsAvailable = available
	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to update doctor availability: %+v", err)
		return err
	}
	return nil
}

// BuildScheduleGrid renders one day of half-hour slots from 08:00 through
// 17:00 inclusive. The noon slot is always blocked for lunch, bookings
// included. Appointments claim a slot by formatted-time equality, so a
// booking at an off-grid minute (say 9:15) never appears in the grid; it
// still shows in the day's appointment list.
func BuildScheduleGrid(appointments []entity.Appointment) []dto.ScheduleSlot {
	booked := make(map[string]*entity.Appointment, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.Status == entity.AppointmentStatusCancelled {
			continue
		}
		booked[appointment.AppointmentDate.Format(slotTimeLayout)] = appointment
	}

	var grid []dto.ScheduleSlot
	base := time.Date(2000, 1, 1, gridStartHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, gridEndHour, 0, 0, 0, time.UTC)
	for t := base; !t.After(end); t = t.Add(30 * time.Minute) {
		label := t.Format(slotTimeLayout)

		if label == lunchSlot {
			grid = append(grid, dto.ScheduleSlot{
				Time:   label,
				Status: dto.SlotStatusBlocked,
				Label:  lunchLabel,
			})
			continue
		}

		if appointment, ok := booked[label]; ok {
			slot := dto.ScheduleSlot{
				Time:          label,
				Status:        dto.SlotStatusBooked,
				AppointmentID: appointment.ID,
				Reason:        appointment.Reason,
			}
			if appointment.Patient.UserID != uuid.Nil {
				slot.PatientName = appointment.Patient.User.FullName()
			}
			grid = append(grid, slot)
			continue
		}

		grid = append(grid, dto.ScheduleSlot{
			Time:   label,
			Status: dto.SlotStatusAvailable,
		})
	}

	return grid
}
