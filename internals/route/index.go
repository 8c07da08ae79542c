package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/route"
	leaveRoute "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/leave/route"
	notifRoute "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/route"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	overtimeRoute "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/overtime/route"
	scheduleRoute "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/route"
	authRoute "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/route"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

// SetupRoutes mounts the public auth endpoints and the authenticated
// /api surface. One notification gateway instance is shared by every
// feature that sends pushes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	notifier := notifService.NewService(db, nil)

	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)

	api := app.Group("/api", middlewares.AuthRequired())
	attendanceRoute.AttendanceRoutes(api, db, notifier)
	scheduleRoute.ScheduleRoutes(api, db, notifier)
	leaveRoute.LeaveRoutes(api, db, notifier)
	overtimeRoute.OvertimeRoutes(api, db, notifier)
	notifRoute.NotificationRoutes(api, db)
}
