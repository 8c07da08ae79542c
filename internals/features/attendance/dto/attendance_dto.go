package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/model"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
)

// ================== RESPONSE ==================
type TimeLogResponse struct {
	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Duration float64    `json:"duration"`
}

type AttendanceResponse struct {
	ID         uuid.UUID         `json:"id"`
	EmployeeID uuid.UUID         `json:"employee_id"`
	Date       time.Time         `json:"date"`
	TimeLogs   []TimeLogResponse `json:"time_logs"`
	TotalHours float64           `json:"total_hours"`
	Status     string            `json:"status"`
}

// AdminAttendanceResponse joins the employee identity onto the record
// for the cross-employee admin view.
type AdminAttendanceResponse struct {
	AttendanceResponse
	EmployeeEmail string `json:"employee_email"`
}

type AttendanceStatistics struct {
	TotalDays     int     `json:"total_days"`
	CompletedDays int     `json:"completed_days"`
	AverageHours  float64 `json:"average_hours"`
}

type HistoryResponse struct {
	Records    []AttendanceResponse `json:"records"`
	Statistics AttendanceStatistics `json:"statistics"`
	Pagination helper.Pagination    `json:"pagination"`
}

// ================ CONVERSION =================
func ToAttendanceResponse(m *model.AttendanceModel) AttendanceResponse {
	logs := make([]TimeLogResponse, 0, len(m.TimeLogs))
	for _, l := range m.TimeLogs {
		logs = append(logs, TimeLogResponse{
			CheckIn:  l.TimeLogCheckIn,
			CheckOut: l.TimeLogCheckOut,
			Duration: l.TimeLogDuration,
		})
	}
	return AttendanceResponse{
		ID:         m.AttendanceID,
		EmployeeID: m.AttendanceEmployeeID,
		Date:       m.AttendanceDate,
		TimeLogs:   logs,
		TotalHours: m.AttendanceTotalHours,
		Status:     m.AttendanceStatus,
	}
}

func ToAttendanceResponseList(models []model.AttendanceModel) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		result = append(result, ToAttendanceResponse(&models[i]))
	}
	return result
}

// BuildStatistics aggregates over the returned page of records; an empty
// page yields an average of 0, not an error.
func BuildStatistics(records []model.AttendanceModel) AttendanceStatistics {
	stats := AttendanceStatistics{TotalDays: len(records)}
	if len(records) == 0 {
		return stats
	}
	var sum float64
	for i := range records {
		if records[i].AttendanceStatus == model.StatusCompleted {
			stats.CompletedDays++
		}
		sum += records[i].AttendanceTotalHours
	}
	stats.AverageHours = sum / float64(len(records))
	return stats
}
