// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	notificationController "github.com/artiechokes/youth-ministry-admin-suite/internals/features/notifications/controller"
	notificationService "github.com/artiechokes/youth-ministry-admin-suite/internals/features/notifications/service"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &notificationController.NotificationController{
		DB:     db,
		Sender: notificationService.NewSMTPSender(),
	}

	notifications := r.Group("/notifications")
	notifications.Get("/",
		authMiddleware.RequirePermission(db, constants.ModuleNotifications, constants.LevelView),
		ctrl.List)
	notifications.Post("/",
		authMiddleware.RequirePermission(db, constants.ModuleNotifications, constants.LevelEdit),
		ctrl.Send)
}
