package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// AttendanceModel is one employee's record for one calendar day. The day
// is the midnight-truncated date in the reference timezone; (employee,
// date) is unique. Records are append-only: each check-in/check-out pair
// becomes one TimeLogModel.
type AttendanceModel struct {
	AttendanceID         uuid.UUID `gorm:"column:attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceEmployeeID uuid.UUID `gorm:"column:attendance_employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date" json:"attendance_employee_id"`
	AttendanceDate       time.Time `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance_employee_date" json:"attendance_date"`
	AttendanceTotalHours float64   `gorm:"column:attendance_total_hours;not null;default:0" json:"attendance_total_hours"`
	AttendanceStatus     string    `gorm:"column:attendance_status;type:varchar(16);not null;default:active" json:"attendance_status"`
	AttendanceCreatedAt  time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt  time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`

	TimeLogs []TimeLogModel `gorm:"foreignKey:TimeLogAttendanceID;references:AttendanceID" json:"time_logs"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

// LastLog returns the most recent time log, or nil when the day has none.
func (a *AttendanceModel) LastLog() *TimeLogModel {
	if len(a.TimeLogs) == 0 {
		return nil
	}
	return &a.TimeLogs[len(a.TimeLogs)-1]
}

// HasOpenLog reports whether the last log is still missing its check-out.
func (a *AttendanceModel) HasOpenLog() bool {
	last := a.LastLog()
	return last != nil && last.TimeLogCheckOut == nil
}

// TimeLogModel is one check-in/check-out pair, owned by exactly one
// attendance record.
type TimeLogModel struct {
	TimeLogID           uuid.UUID  `gorm:"column:time_log_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"time_log_id"`
	TimeLogAttendanceID uuid.UUID  `gorm:"column:time_log_attendance_id;type:uuid;not null;index" json:"time_log_attendance_id"`
	TimeLogCheckIn      time.Time  `gorm:"column:time_log_check_in;not null" json:"time_log_check_in"`
	TimeLogCheckOut     *time.Time `gorm:"column:time_log_check_out" json:"time_log_check_out"`
	TimeLogDuration     float64    `gorm:"column:time_log_duration;not null;default:0" json:"time_log_duration"`
	TimeLogCreatedAt    time.Time  `gorm:"column:time_log_created_at;autoCreateTime" json:"time_log_created_at"`
}

func (TimeLogModel) TableName() string {
	return "time_logs"
}
