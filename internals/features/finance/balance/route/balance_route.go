// file: internals/features/finance/balance/route/balance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/finance/balance/controller"
	middlewares "schoolku_backend/internals/middlewares"
)

// BalanceRoutes: keluarga laporan Balance List.
func BalanceRoutes(admin fiber.Router, registry *database.TenantRegistry) {
	h := controller.NewBalanceReportController(registry)

	grp := admin.Group("/finance/balance")
	{
		// =========================
		// Laporan (4 varian)
		// =========================
		grp.Get("/classes", h.ClassSummary)
		grp.Get("/classes/detail", h.ClassDetail)
		grp.Get("/students", h.StudentSummary)
		grp.Get("/students/detail", h.StudentDetail)

		// =========================
		// Pengisi kontrol filter
		// =========================
		grp.Get("/fee-heads/grouped", h.GroupedFeeHeadings)

		// =========================
		// Export (limiter ketat)
		// =========================
		grp.Get("/students/detail/export.xlsx", middlewares.ExportRateLimiter(), h.ExportXLSX)
		grp.Get("/students/detail/export.pdf", middlewares.ExportRateLimiter(), h.ExportPDF)
	}
}
