package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/model"
)

// ================== RESPONSE ==================
type NotificationResponse struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]any    `json:"data"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	IsRead       bool              `json:"is_read"`
	ReadAt       *time.Time        `json:"read_at"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ================ CONVERSION =================
func ToNotificationResponse(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        m.NotificationID,
		Title:     m.NotificationTitle,
		Body:      m.NotificationBody,
		Data:      m.NotificationData,
		Type:      m.NotificationType,
		Status:    m.NotificationStatus,
		IsRead:    m.NotificationIsRead,
		ReadAt:    m.NotificationReadAt,
		CreatedAt: m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, ToNotificationResponse(&models[i]))
	}
	return result
}
