package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaveStatus represents the review status of a doctor leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// DoctorLeaveRequest is created by a doctor and reviewed by a hospital admin.
type DoctorLeaveRequest struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartDate  time.Time   `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time   `gorm:"type:date;not null" json:"end_date"`
	Reason     string      `gorm:"type:text" json:"reason,omitempty"`
	Status     LeaveStatus `gorm:"type:leave_status;not null;default:'pending';index" json:"status"`
	ReviewedBy *uuid.UUID  `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorLeaveRequest) TableName() string {
	return "doctor_leave_requests"
}

// IsPending reports whether the request is still awaiting review.
func (l *DoctorLeaveRequest) IsPending() bool {
	return l.Status == LeaveStatusPending
}
