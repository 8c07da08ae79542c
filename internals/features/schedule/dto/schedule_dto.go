package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/model"
)

type CreateScheduleRequest struct {
	WeekStart time.Time       `json:"week_start" validate:"required"`
	WeekEnd   time.Time       `json:"week_end" validate:"required"`
	Days      []model.DayPlan `json:"days" validate:"required"`
}

type UpdateScheduleRequest struct {
	Days []model.DayPlan `json:"days" validate:"required"`
}

type ScheduleResponse struct {
	ScheduleID uuid.UUID       `json:"schedule_id"`
	WeekStart  time.Time       `json:"week_start"`
	WeekEnd    time.Time       `json:"week_end"`
	Days       []model.DayPlan `json:"days"`
	CreatedBy  uuid.UUID       `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func ToScheduleResponse(m *model.WeeklyScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID: m.ScheduleID,
		WeekStart:  m.ScheduleWeekStart,
		WeekEnd:    m.ScheduleWeekEnd,
		Days:       m.ScheduleDays.Data(),
		CreatedBy:  m.ScheduleCreatedBy,
		CreatedAt:  m.ScheduleCreatedAt,
		UpdatedAt:  m.ScheduleUpdatedAt,
	}
}

func ToScheduleResponseList(list []model.WeeklyScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(list))
	for i := range list {
		out = append(out, ToScheduleResponse(&list[i]))
	}
	return out
}
