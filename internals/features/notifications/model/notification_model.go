package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusSent   = "sent"
	StatusFailed = "failed"

	PriorityNormal = "normal"

	TypeSystem = "system"
)

type NotificationModel struct {
	NotificationID           uuid.UUID         `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID       uuid.UUID         `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationTitle        string            `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody         string            `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	NotificationData         datatypes.JSONMap `gorm:"column:notification_data" json:"notification_data"`
	NotificationType         string            `gorm:"column:notification_type;type:varchar(32);not null;default:system" json:"notification_type"`
	NotificationStatus       string            `gorm:"column:notification_status;type:varchar(16);not null;default:sent" json:"notification_status"`
	NotificationIsRead       bool              `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationReadAt       *time.Time        `gorm:"column:notification_read_at" json:"notification_read_at"`
	NotificationFCMMessageID *string           `gorm:"column:notification_fcm_message_id;type:text" json:"notification_fcm_message_id"`
	NotificationPriority     string            `gorm:"column:notification_priority;type:varchar(8);not null;default:normal" json:"notification_priority"`
	NotificationCreatedAt    time.Time         `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt    time.Time         `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
