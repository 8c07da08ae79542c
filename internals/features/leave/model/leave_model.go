package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeAnnual = "annual"
	TypeSick   = "sick"
	TypeUnpaid = "unpaid"
	TypeOther  = "other"
)

type LeaveRequestModel struct {
	LeaveID         uuid.UUID `gorm:"column:leave_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"leave_id"`
	LeaveEmployeeID uuid.UUID `gorm:"column:leave_employee_id;type:uuid;not null;index" json:"leave_employee_id"`

	LeaveType      string    `gorm:"column:leave_type;type:varchar(20);not null" json:"leave_type"`
	LeaveReason    string    `gorm:"column:leave_reason;type:text;not null" json:"leave_reason"`
	LeaveStartDate time.Time `gorm:"column:leave_start_date;not null" json:"leave_start_date"`
	LeaveEndDate   time.Time `gorm:"column:leave_end_date;not null" json:"leave_end_date"`

	LeaveStatus          string     `gorm:"column:leave_status;type:varchar(20);default:'pending';index" json:"leave_status"`
	LeaveAdminNote       *string    `gorm:"column:leave_admin_note;type:text" json:"leave_admin_note,omitempty"`
	LeaveRejectionReason *string    `gorm:"column:leave_rejection_reason;type:text" json:"leave_rejection_reason,omitempty"`
	LeaveApprovedBy      *uuid.UUID `gorm:"column:leave_approved_by;type:uuid" json:"leave_approved_by,omitempty"`
	LeaveApprovedAt      *time.Time `gorm:"column:leave_approved_at" json:"leave_approved_at,omitempty"`
	LeaveRejectedBy      *uuid.UUID `gorm:"column:leave_rejected_by;type:uuid" json:"leave_rejected_by,omitempty"`
	LeaveRejectedAt      *time.Time `gorm:"column:leave_rejected_at" json:"leave_rejected_at,omitempty"`

	LeaveCreatedAt time.Time `gorm:"column:leave_created_at;autoCreateTime" json:"leave_created_at"`
	LeaveUpdatedAt time.Time `gorm:"column:leave_updated_at;autoUpdateTime" json:"leave_updated_at"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// IsPending reports whether the request can still be modified or
// decided. Approved and rejected requests are immutable.
func (m *LeaveRequestModel) IsPending() bool {
	return m.LeaveStatus == StatusPending
}
