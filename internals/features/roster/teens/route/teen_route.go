// file: internals/features/roster/teens/route/teen_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	teenController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/controller"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

// RegistrationRoutes mounts the public self-service registration endpoint.
func RegistrationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &teenController.TeenController{DB: db}
	app.Post("/api/registrations", middlewares.RegisterRateLimiter(), ctrl.Register)
}

// TeenRoutes mounts the staff roster endpoints under an authenticated group.
func TeenRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &teenController.TeenController{DB: db}

	teens := r.Group("/teens")
	teens.Get("/",
		authMiddleware.RequirePermission(db, constants.ModuleRoster, constants.LevelView),
		ctrl.List)
	teens.Get("/:id",
		authMiddleware.RequirePermission(db, constants.ModuleRoster, constants.LevelView),
		ctrl.Get)
	teens.Patch("/:id",
		authMiddleware.RequirePermission(db, constants.ModuleRoster, constants.LevelEdit),
		ctrl.Update)
	teens.Post("/:id/archive",
		authMiddleware.RequirePermission(db, constants.ModuleRoster, constants.LevelManage),
		ctrl.Archive)
	teens.Post("/:id/restore",
		authMiddleware.RequirePermission(db, constants.ModuleRoster, constants.LevelManage),
		ctrl.Restore)
}
