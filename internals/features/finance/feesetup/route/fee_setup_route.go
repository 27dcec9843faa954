// file: internals/features/finance/feesetup/route/fee_setup_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/finance/feesetup/controller"
)

// FeeSetupRoutes: kebijakan klasifikasi fee head per sekolah.
func FeeSetupRoutes(admin fiber.Router, registry *database.TenantRegistry) {
	h := controller.NewFeeCategoryPolicyController(registry)

	grp := admin.Group("/finance/fee-category-policy")
	{
		grp.Get("/", h.Get)
		grp.Put("/", h.Update)
	}
}
