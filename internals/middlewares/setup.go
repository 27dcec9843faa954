// file: internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	authmw "schoolku_backend/internals/middlewares/auth"
	loggermw "schoolku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu CORS, limiter, logger, dan resolusi token tenant.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggermw.LoggerMiddleware())
	app.Use(authmw.SchoolTokenMiddleware())
}
