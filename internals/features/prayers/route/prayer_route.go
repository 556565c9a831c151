// file: internals/features/prayers/route/prayer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	prayerController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/prayers/controller"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

func PrayerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &prayerController.PrayerController{DB: db}

	prayers := r.Group("/prayers")
	prayers.Get("/",
		authMiddleware.RequirePermission(db, constants.ModulePrayers, constants.LevelView),
		ctrl.List)
	prayers.Post("/",
		authMiddleware.RequirePermission(db, constants.ModulePrayers, constants.LevelEdit),
		ctrl.Create)
	prayers.Patch("/:id",
		authMiddleware.RequirePermission(db, constants.ModulePrayers, constants.LevelEdit),
		ctrl.Update)
	prayers.Post("/:id/answered",
		authMiddleware.RequirePermission(db, constants.ModulePrayers, constants.LevelEdit),
		ctrl.ToggleAnswered)
	prayers.Post("/:id/archive",
		authMiddleware.RequirePermission(db, constants.ModulePrayers, constants.LevelManage),
		ctrl.Archive)
}
