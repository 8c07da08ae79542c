package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/controller"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/repository"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/service"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.Service) {
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, notifier)
	ctrl := controller.NewAttendanceController(db, svc, repo)

	attendance := api.Group("/attendance")
	attendance.Post("/check", ctrl.CheckInOut)
	attendance.Get("/history", ctrl.GetHistory)

	admin := attendance.Group("/admin", middlewares.AdminOnly())
	admin.Get("/all", ctrl.GetAllEmployees)
}
