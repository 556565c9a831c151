// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/controller"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

// AuthRoutes: public login endpoints plus authenticated session handling.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := &userController.AuthController{DB: db}

	public := app.Group("/api/auth")
	public.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	public.Post("/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	public.Post("/refresh", ctl.Refresh)

	private := app.Group("/api", authMiddleware.AuthMiddleware(db))
	private.Post("/auth/logout", ctl.Logout)
	private.Get("/me", ctl.Me)
	private.Patch("/me", ctl.UpdateMe)
}

// StaffRoutes: staff roster management, staff_* gated.
func StaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.StaffController{DB: db}

	staff := r.Group("/staff")
	staff.Get("/", authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelView), ctl.List)
	staff.Get("/:id", authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelView), ctl.Get)
	staff.Post("/", authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelManage), ctl.Create)
	staff.Patch("/:id", authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelManage), ctl.Update)
	staff.Post("/:id/archive", authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelManage), ctl.Archive)
	staff.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.ModuleStaff, constants.LevelManage), ctl.Restore)
}
