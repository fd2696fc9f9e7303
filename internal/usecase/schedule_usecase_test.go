package usecase_test

import (
	"testing"
	"time"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotByTime(t *testing.T, grid []dto.ScheduleSlot, label string) dto.ScheduleSlot {
	t.Helper()
	for _, slot := range grid {
		if slot.Time == label {
			return slot
		}
	}
	t.Fatalf("slot %q not found in grid", label)
	return dto.ScheduleSlot{}
}

func appointmentAt(day time.Time, hour, minute int, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:              int64(hour*100 + minute),
		AppointmentDate: time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC),
		Status:          status,
		Reason:          "checkup",
	}
}

func TestBuildScheduleGridShape(t *testing.T) {
	grid := usecase.BuildScheduleGrid(nil)

	// 08:00 through 17:00 inclusive in half-hour steps
	require.Len(t, grid, 19)
	assert.Equal(t, "8:00 AM", grid[0].Time)
	assert.Equal(t, "5:00 PM", grid[len(grid)-1].Time)

	blocked := 0
	for _, slot := range grid {
		if slot.Status == dto.SlotStatusBlocked {
			blocked++
		}
	}
	assert.Equal(t, 1, blocked)

	lunch := slotByTime(t, grid, "12:00 PM")
	assert.Equal(t, dto.SlotStatusBlocked, lunch.Status)
	assert.Equal(t, "Lunch Break", lunch.Label)
}

func TestBuildScheduleGridBookedOverlay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	booked := appointmentAt(day, 9, 30, entity.AppointmentStatusConfirmed)
	booked.Patient = entity.PatientProfile{
		UserID: uuid.New(),
		User:   entity.User{FirstName: "Jane", LastName: "Doe"},
	}

	grid := usecase.BuildScheduleGrid([]entity.Appointment{booked})

	slot := slotByTime(t, grid, "9:30 AM")
	assert.Equal(t, dto.SlotStatusBooked, slot.Status)
	assert.Equal(t, booked.ID, slot.AppointmentID)
	assert.Equal(t, "Jane Doe", slot.PatientName)
	assert.Equal(t, "checkup", slot.Reason)

	// Neighbouring slots stay free
	assert.Equal(t, dto.SlotStatusAvailable, slotByTime(t, grid, "9:00 AM").Status)
	assert.Equal(t, dto.SlotStatusAvailable, slotByTime(t, grid, "10:00 AM").Status)
}

func TestBuildScheduleGridOffGridBookingInvisible(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// A 9:15 booking matches no slot label and silently disappears from
	// the grid; the day's appointment list still carries it.
	offGrid := appointmentAt(day, 9, 15, entity.AppointmentStatusConfirmed)
	grid := usecase.BuildScheduleGrid([]entity.Appointment{offGrid})

	for _, slot := range grid {
		assert.NotEqual(t, dto.SlotStatusBooked, slot.Status)
	}
}

func TestBuildScheduleGridCancelledNotBooked(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cancelled := appointmentAt(day, 10, 0, entity.AppointmentStatusCancelled)
	grid := usecase.BuildScheduleGrid([]entity.Appointment{cancelled})

	assert.Equal(t, dto.SlotStatusAvailable, slotByTime(t, grid, "10:00 AM").Status)
}

func TestBuildScheduleGridLunchBookingStaysBlocked(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// Even a booking sitting exactly at noon never overrides the lunch block
	noon := appointmentAt(day, 12, 0, entity.AppointmentStatusConfirmed)
	grid := usecase.BuildScheduleGrid([]entity.Appointment{noon})

	lunch := slotByTime(t, grid, "12:00 PM")
	assert.Equal(t, dto.SlotStatusBlocked, lunch.Status)
	assert.Equal(t, "Lunch Break", lunch.Label)
	assert.Zero(t, lunch.AppointmentID)
}
