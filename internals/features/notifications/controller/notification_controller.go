package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/dto"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/model"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/notify/list - the caller's inbox (+ pagination)
func (ctrl *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	userID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)

	if t := c.Query("type"); t != "" {
		q = q.Where("notification_type = ?", t)
	}
	if s := c.Query("status"); s != "" {
		q = q.Where("notification_status = ?", s)
	}
	if isRead := c.Query("isRead"); isRead != "" {
		q = q.Where("notification_is_read = ?", isRead == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count notifications: %v", err)
		return helper.JsonServerError(c, "Failed to count notifications", err)
	}

	var notifs []model.NotificationModel
	if err := q.
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] List notifications: %v", err)
		return helper.JsonServerError(c, "Failed to fetch notifications", err)
	}

	return helper.JsonList(c, "Notifications fetched",
		dto.ToNotificationResponseList(notifs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
