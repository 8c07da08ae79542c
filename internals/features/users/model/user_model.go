package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);uniqueIndex;not null" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:employee" json:"user_role"`
	UserFCMToken  *string   `gorm:"column:user_fcm_token;type:text" json:"-"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsAdmin() bool {
	return u.UserRole == RoleAdmin
}
