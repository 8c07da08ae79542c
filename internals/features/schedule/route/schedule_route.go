package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/controller"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/repository"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.Service) {
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, notifier)
	ctrl := controller.NewScheduleController(db, svc, repo)

	schedule := api.Group("/schedule")
	schedule.Get("/current", ctrl.GetCurrent)

	admin := schedule.Group("", middlewares.AdminOnly())
	admin.Get("/all", ctrl.GetAll)
	admin.Post("/", ctrl.Create)
	admin.Put("/:scheduleId", ctrl.Update)
}
