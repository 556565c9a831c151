// file: internals/features/roster/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	attendanceController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/attendance/controller"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &attendanceController.AttendanceController{DB: db}

	attendance := r.Group("/attendance")
	attendance.Get("/today",
		authMiddleware.RequirePermission(db, constants.ModuleKiosk, constants.LevelView),
		ctrl.Today)
	attendance.Post("/checkin",
		authMiddleware.RequirePermission(db, constants.ModuleKiosk, constants.LevelEdit),
		ctrl.Checkin)
	attendance.Post("/checkout",
		authMiddleware.RequirePermission(db, constants.ModuleKiosk, constants.LevelEdit),
		ctrl.Checkout)
	attendance.Post("/kiosk",
		authMiddleware.RequirePermission(db, constants.ModuleKiosk, constants.LevelEdit),
		ctrl.KioskToggle)
}
