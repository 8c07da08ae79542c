package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/overtime/model"
)

type CreateOTRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Reason    string    `json:"reason" validate:"required"`
	Project   string    `json:"project"`
	Tasks     []string  `json:"tasks"`
}

type UpdateOTRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Reason    string    `json:"reason" validate:"required"`
	Project   string    `json:"project"`
	Tasks     []string  `json:"tasks"`
}

type ApproveOTRequest struct {
	AdminNote string `json:"admin_note"`
}

type RejectOTRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

type OTResponse struct {
	OTID            uuid.UUID  `json:"ot_id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	Date            time.Time  `json:"date"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	TotalHours      float64    `json:"total_hours"`
	Reason          string     `json:"reason"`
	Project         string     `json:"project,omitempty"`
	Tasks           []string   `json:"tasks"`
	Status          string     `json:"status"`
	AdminNote       *string    `json:"admin_note,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedBy      *uuid.UUID `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToOTResponse(m *model.OTReportModel) OTResponse {
	return OTResponse{
		OTID:            m.OTID,
		EmployeeID:      m.OTEmployeeID,
		Date:            m.OTDate,
		StartTime:       m.OTStartTime,
		EndTime:         m.OTEndTime,
		TotalHours:      m.OTTotalHours,
		Reason:          m.OTReason,
		Project:         m.OTProject,
		Tasks:           m.OTTasks,
		Status:          m.OTStatus,
		AdminNote:       m.OTAdminNote,
		RejectionReason: m.OTRejectionReason,
		ApprovedBy:      m.OTApprovedBy,
		ApprovedAt:      m.OTApprovedAt,
		RejectedBy:      m.OTRejectedBy,
		RejectedAt:      m.OTRejectedAt,
		CreatedAt:       m.OTCreatedAt,
		UpdatedAt:       m.OTUpdatedAt,
	}
}

func ToOTResponseList(list []model.OTReportModel) []OTResponse {
	out := make([]OTResponse, 0, len(list))
	for i := range list {
		out = append(out, ToOTResponse(&list[i]))
	}
	return out
}
