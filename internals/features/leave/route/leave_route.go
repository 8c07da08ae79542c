package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/leave/controller"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

func LeaveRoutes(api fiber.Router, db *gorm.DB, notifier *notifService.Service) {
	ctrl := controller.NewLeaveController(db, notifier)

	leave := api.Group("/leave-requests")

	// admin routes go first so "/admin" never matches ":id"
	admin := leave.Group("/admin", middlewares.AdminOnly())
	admin.Get("/all", ctrl.AdminGetAll)
	admin.Get("/details/:id", ctrl.AdminGetDetails)
	admin.Put("/approve/:id", ctrl.AdminApprove)
	admin.Put("/reject/:id", ctrl.AdminReject)

	leave.Post("/", ctrl.Create)
	leave.Get("/leaves", ctrl.GetList)
	leave.Get("/:id", ctrl.GetByID)
	leave.Put("/:id", ctrl.Update)
	leave.Delete("/:id", ctrl.Delete)
}
