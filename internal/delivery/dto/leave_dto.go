package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"omitempty"`
}

type LeaveRequestResponse struct {
	ID         int64      `json:"id"`
	DoctorID   uuid.UUID  `json:"doctor_id"`
	DoctorName string     `json:"doctor_name,omitempty"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Reason     string     `json:"reason,omitempty"`
	Status     string     `json:"status"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type LeaveRequestListResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
	Total         int                    `json:"total"`
}
