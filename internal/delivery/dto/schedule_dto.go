package dto

import "github.com/google/uuid"

// Slot statuses in the daily grid
const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
	SlotStatusBlocked   = "blocked"
)

// ScheduleSlot is one half-hour window in the daily grid.
type ScheduleSlot struct {
	Time          string `json:"time"` // e.g. "9:30 AM"
	Status        string `json:"status"`
	Label         string `json:"label,omitempty"` // e.g. "Lunch Break"
	AppointmentID int64  `json:"appointment_id,omitempty"`
	PatientName   string `json:"patient_name,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type DoctorInfo struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
	HospitalCode   string    `json:"hospital_code,omitempty"`
}

type QuickSettings struct {
	IsAvailable bool `json:"is_available"`
}

type DoctorScheduleResponse struct {
	DoctorInfo           DoctorInfo            `json:"doctor_info"`
	TodayAppointments    []AppointmentResponse `json:"today_appointments"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
	ScheduleGrid         []ScheduleSlot        `json:"schedule_grid"`
	QuickSettings        QuickSettings         `json:"quick_settings"`
}

type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
