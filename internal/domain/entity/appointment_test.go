package entity_test

import (
	"testing"
	"time"

	"hospital-appointment-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentIsTerminal(t *testing.T) {
	tests := []struct {
		status   entity.AppointmentStatus
		terminal bool
	}{
		{entity.AppointmentStatusPending, false},
		{entity.AppointmentStatusConfirmed, false},
		{entity.AppointmentStatusInProgress, false},
		{entity.AppointmentStatusCompleted, true},
		{entity.AppointmentStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appointment := &entity.Appointment{Status: tt.status}
			assert.Equal(t, tt.terminal, appointment.IsTerminal())
		})
	}
}

func TestAppointmentCanStart(t *testing.T) {
	tests := []struct {
		status   entity.AppointmentStatus
		canStart bool
	}{
		{entity.AppointmentStatusPending, true},
		{entity.AppointmentStatusConfirmed, true},
		{entity.AppointmentStatusInProgress, false},
		{entity.AppointmentStatusCompleted, false},
		{entity.AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appointment := &entity.Appointment{Status: tt.status}
			assert.Equal(t, tt.canStart, appointment.CanStart())
		})
	}
}

func TestAppointmentIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	t.Run("elapsed non-terminal appointment is overdue", func(t *testing.T) {
		appointment := &entity.Appointment{
			Status:          entity.AppointmentStatusConfirmed,
			AppointmentDate: past,
		}
		assert.True(t, appointment.IsOverdue(now))
	})

	t.Run("future appointment is not overdue", func(t *testing.T) {
		appointment := &entity.Appointment{
			Status:          entity.AppointmentStatusPending,
			AppointmentDate: future,
		}
		assert.False(t, appointment.IsOverdue(now))
	})

	t.Run("elapsed completed appointment is not overdue", func(t *testing.T) {
		appointment := &entity.Appointment{
			Status:          entity.AppointmentStatusCompleted,
			AppointmentDate: past,
		}
		assert.False(t, appointment.IsOverdue(now))
	})

	t.Run("elapsed cancelled appointment is not overdue", func(t *testing.T) {
		appointment := &entity.Appointment{
			Status:          entity.AppointmentStatusCancelled,
			AppointmentDate: past,
		}
		assert.False(t, appointment.IsOverdue(now))
	})
}
