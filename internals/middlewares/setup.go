package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMiddleware.LoggerMiddleware())
}
