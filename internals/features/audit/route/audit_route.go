// file: internals/features/audit/route/audit_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	auditController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/controller"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

func AuditRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &auditController.AuditController{DB: db}

	r.Get("/audit-logs",
		authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelManage),
		ctrl.List)
}
