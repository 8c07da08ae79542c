package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)
	tokenCtrl := controller.NewFCMTokenController(db)

	notify := api.Group("/notify")
	notify.Get("/list", ctrl.GetUserNotifications)

	fcm := api.Group("/fcm-token")
	fcm.Post("/register", tokenCtrl.Register)
}
