package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShiftAssignment references an employee placed into a shift bucket,
// with an optional name/position snapshot taken at assignment time.
type ShiftAssignment struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name,omitempty"`
	Position   string    `json:"position,omitempty"`
}

type DayShifts struct {
	Morning   []ShiftAssignment `json:"morning"`
	Afternoon []ShiftAssignment `json:"afternoon"`
}

type DayPlan struct {
	Date   time.Time `json:"date"`
	Shifts DayShifts `json:"shifts"`
}

// WeeklyScheduleModel covers one calendar week: week_end is always
// week_start + 6 days, both midnight-truncated. The 7 day plans keep
// their document shape and live in one JSONB column.
type WeeklyScheduleModel struct {
	ScheduleID        uuid.UUID                     `gorm:"column:schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"schedule_id"`
	ScheduleWeekStart time.Time                     `gorm:"column:schedule_week_start;not null;index" json:"schedule_week_start"`
	ScheduleWeekEnd   time.Time                     `gorm:"column:schedule_week_end;not null;index" json:"schedule_week_end"`
	ScheduleDays      datatypes.JSONType[[]DayPlan] `gorm:"column:schedule_days;not null" json:"schedule_days"`
	ScheduleCreatedBy uuid.UUID                     `gorm:"column:schedule_created_by;type:uuid" json:"schedule_created_by"`
	ScheduleCreatedAt time.Time                     `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time                     `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
}

func (WeeklyScheduleModel) TableName() string {
	return "weekly_schedules"
}

// AffectedEmployees collects the distinct employee ids appearing in any
// morning or afternoon bucket, in first-seen order.
func AffectedEmployees(days []DayPlan) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{}
	var ids []uuid.UUID
	add := func(shifts []ShiftAssignment) {
		for _, sa := range shifts {
			if sa.EmployeeID == uuid.Nil {
				continue
			}
			if _, ok := seen[sa.EmployeeID]; !ok {
				seen[sa.EmployeeID] = struct{}{}
				ids = append(ids, sa.EmployeeID)
			}
		}
	}
	for _, day := range days {
		add(day.Shifts.Morning)
		add(day.Shifts.Afternoon)
	}
	return ids
}
