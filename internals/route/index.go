// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/route"
	eventRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/route"
	formRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/route"
	notificationRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/notifications/route"
	prayerRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/prayers/route"
	attendanceRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/attendance/route"
	teenRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/route"
	userRoute "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/route"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

// SetupRoutes mounts the public surface and the authenticated admin
// group. Everything under /api/a carries a JWT plus a per-route
// permission guard.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// public
	teenRoute.RegistrationRoutes(app, db)
	userRoute.AuthRoutes(app, db)

	// authenticated admin surface
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	teenRoute.TeenRoutes(admin, db)
	attendanceRoute.AttendanceRoutes(admin, db)
	formRoute.FormRoutes(admin, db)
	eventRoute.EventRoutes(admin, db)
	prayerRoute.PrayerRoutes(admin, db)
	notificationRoute.NotificationRoutes(admin, db)
	userRoute.StaffRoutes(admin, db)
	auditRoute.AuditRoutes(admin, db)
}
