package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/model"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

type FCMTokenController struct {
	DB *gorm.DB
}

func NewFCMTokenController(db *gorm.DB) *FCMTokenController {
	return &FCMTokenController{DB: db}
}

// 🟢 POST /api/fcm-token/register - save/refresh the caller's device token
func (ctrl *FCMTokenController) Register(c *fiber.Ctx) error {
	userID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token is required")
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_fcm_token", strings.TrimSpace(req.Token)).Error; err != nil {
		log.Printf("[ERROR] Save FCM token: %v", err)
		return helper.JsonServerError(c, "Failed to register token", err)
	}

	return helper.JsonOK(c, "Token registered", nil)
}
