package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/overtime/controller"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

func OvertimeRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.Service) {
	ctrl := controller.NewOTController(db, notifier)

	ot := api.Group("/ot-reports")

	// admin routes go first so "/admin" never matches ":id"
	admin := ot.Group("/admin", middlewares.AdminOnly())
	admin.Put("/approve/:id", ctrl.AdminApprove)
	admin.Put("/reject/:id", ctrl.AdminReject)

	ot.Post("/", ctrl.Create)
	ot.Get("/", ctrl.GetList)
	ot.Get("/:id", ctrl.GetByID)
	ot.Put("/:id", ctrl.Update)
	ot.Delete("/:id", ctrl.Delete)
}
