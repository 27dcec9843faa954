package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "schoolku_backend/internals/databases"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App, registry *database.TenantRegistry) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Schoolku backend siap 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		serverStatus := "OK"
		poolStatus := "Connected"
		httpStatus := fiber.StatusOK

		if err := registry.Ping(c.UserContext()); err != nil {
			poolStatus = "Database connection error: " + err.Error()
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"tenant_pools":   registry.Len(),
			"pools_health":   poolStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
