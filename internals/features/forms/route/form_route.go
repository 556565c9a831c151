// file: internals/features/forms/route/form_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	formController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/controller"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

func FormRoutes(r fiber.Router, db *gorm.DB) {
	forms := &formController.FormController{DB: db}
	assignments := &formController.AssignmentController{DB: db}

	view := authMiddleware.RequirePermission(db, constants.ModuleForms, constants.LevelView)
	edit := authMiddleware.RequirePermission(db, constants.ModuleForms, constants.LevelEdit)
	manage := authMiddleware.RequirePermission(db, constants.ModuleForms, constants.LevelManage)

	group := r.Group("/forms")
	group.Get("/", view, forms.List)
	group.Get("/:id", view, forms.Get)
	group.Post("/", edit, forms.Create)
	group.Patch("/:id", edit, forms.Update)
	group.Post("/:id/archive", manage, forms.Archive)
	group.Post("/:id/assignments", edit, assignments.Assign)

	r.Get("/teens/:id/forms", view, assignments.TeenAssignments)

	ag := r.Group("/assignments")
	ag.Post("/:id/submissions", edit, assignments.Submit)
	ag.Post("/:id/unassign", edit, assignments.Unassign)
	ag.Get("/:id/summary", view, assignments.Summary)

	r.Get("/submissions/:id/signature/:fieldId", view, assignments.SignatureImage)
}
