package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// OTReportModel is an overtime report filed by an employee after the
// fact; it goes through the same pending/approved/rejected lifecycle as
// a leave request.
type OTReportModel struct {
	OTID         uuid.UUID `gorm:"column:ot_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ot_id"`
	OTEmployeeID uuid.UUID `gorm:"column:ot_employee_id;type:uuid;not null;index" json:"ot_employee_id"`

	OTDate       time.Time      `gorm:"column:ot_date;not null" json:"ot_date"`
	OTStartTime  time.Time      `gorm:"column:ot_start_time;not null" json:"ot_start_time"`
	OTEndTime    time.Time      `gorm:"column:ot_end_time;not null" json:"ot_end_time"`
	OTTotalHours float64        `gorm:"column:ot_total_hours;not null" json:"ot_total_hours"`
	OTReason     string         `gorm:"column:ot_reason;type:text;not null" json:"ot_reason"`
	OTProject    string         `gorm:"column:ot_project;type:varchar(120)" json:"ot_project"`
	OTTasks      pq.StringArray `gorm:"column:ot_tasks;type:text[]" json:"ot_tasks"`

	OTStatus          string     `gorm:"column:ot_status;type:varchar(20);default:'pending';index" json:"ot_status"`
	OTAdminNote       *string    `gorm:"column:ot_admin_note;type:text" json:"ot_admin_note,omitempty"`
	OTRejectionReason *string    `gorm:"column:ot_rejection_reason;type:text" json:"ot_rejection_reason,omitempty"`
	OTApprovedBy      *uuid.UUID `gorm:"column:ot_approved_by;type:uuid" json:"ot_approved_by,omitempty"`
	OTApprovedAt      *time.Time `gorm:"column:ot_approved_at" json:"ot_approved_at,omitempty"`
	OTRejectedBy      *uuid.UUID `gorm:"column:ot_rejected_by;type:uuid" json:"ot_rejected_by,omitempty"`
	OTRejectedAt      *time.Time `gorm:"column:ot_rejected_at" json:"ot_rejected_at,omitempty"`

	OTCreatedAt time.Time `gorm:"column:ot_created_at;autoCreateTime" json:"ot_created_at"`
	OTUpdatedAt time.Time `gorm:"column:ot_updated_at;autoUpdateTime" json:"ot_updated_at"`
}

func (OTReportModel) TableName() string {
	return "ot_reports"
}

func (m *OTReportModel) IsPending() bool {
	return m.OTStatus == StatusPending
}
