package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/leave/model"
)

type CreateLeaveRequest struct {
	Type      string    `json:"type" validate:"required,oneof=annual sick unpaid other"`
	Reason    string    `json:"reason" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type UpdateLeaveRequest struct {
	Type      string    `json:"type" validate:"required,oneof=annual sick unpaid other"`
	Reason    string    `json:"reason" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type ApproveLeaveRequest struct {
	AdminNote string `json:"admin_note"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

type LeaveResponse struct {
	LeaveID         uuid.UUID  `json:"leave_id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	Type            string     `json:"type"`
	Reason          string     `json:"reason"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
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

func ToLeaveResponse(m *model.LeaveRequestModel) LeaveResponse {
	return LeaveResponse{
		LeaveID:         m.LeaveID,
		EmployeeID:      m.LeaveEmployeeID,
		Type:            m.LeaveType,
		Reason:          m.LeaveReason,
		StartDate:       m.LeaveStartDate,
		EndDate:         m.LeaveEndDate,
		Status:          m.LeaveStatus,
		AdminNote:       m.LeaveAdminNote,
		RejectionReason: m.LeaveRejectionReason,
		ApprovedBy:      m.LeaveApprovedBy,
		ApprovedAt:      m.LeaveApprovedAt,
		RejectedBy:      m.LeaveRejectedBy,
		RejectedAt:      m.LeaveRejectedAt,
		CreatedAt:       m.LeaveCreatedAt,
		UpdatedAt:       m.LeaveUpdatedAt,
	}
}

func ToLeaveResponseList(list []model.LeaveRequestModel) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(list))
	for i := range list {
		out = append(out, ToLeaveResponse(&list[i]))
	}
	return out
}
