// file: internals/features/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	eventController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/controller"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

func EventRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &eventController.EventController{DB: db}

	events := r.Group("/events")
	events.Get("/",
		authMiddleware.RequirePermission(db, constants.ModuleEvents, constants.LevelView),
		ctrl.List)
	events.Get("/:id",
		authMiddleware.RequirePermission(db, constants.ModuleEvents, constants.LevelView),
		ctrl.Get)
	events.Post("/",
		authMiddleware.RequirePermission(db, constants.ModuleEvents, constants.LevelEdit),
		ctrl.Create)
	events.Patch("/:id",
		authMiddleware.RequirePermission(db, constants.ModuleEvents, constants.LevelEdit),
		ctrl.Update)
	events.Post("/:id/archive",
		authMiddleware.RequirePermission(db, constants.ModuleEvents, constants.LevelManage),
		ctrl.Archive)
}
