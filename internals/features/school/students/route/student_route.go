// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/school/students/controller"
)

// StudentRoutes: roster identitas siswa (dipakai picker kelas & laporan).
func StudentRoutes(admin fiber.Router, registry *database.TenantRegistry) {
	h := controller.NewStudentController(registry)

	grp := admin.Group("/students")
	{
		grp.Get("/", h.List)
	}
}
