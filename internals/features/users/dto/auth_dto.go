package dto

import (
	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/model"
)

// ================== REQUEST ==================
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=employee admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ================ CONVERSION =================
func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:    u.UserID,
		Email: u.UserEmail,
		Role:  u.UserRole,
	}
}
