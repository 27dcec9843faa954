// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	database "schoolku_backend/internals/databases"
	balanceRoute "schoolku_backend/internals/features/finance/balance/route"
	feesetupRoute "schoolku_backend/internals/features/finance/feesetup/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// Grup /api/a adalah permukaan admin sekolah (tenant dari token/header).
func SetupRoutes(app *fiber.App, registry *database.TenantRegistry) {
	BaseRoutes(app, registry)

	api := app.Group("/api")
	admin := api.Group("/a")

	balanceRoute.BalanceRoutes(admin, registry)
	feesetupRoute.FeeSetupRoutes(admin, registry)
	studentRoute.StudentRoutes(admin, registry)
}
