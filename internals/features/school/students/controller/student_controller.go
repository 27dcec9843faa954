// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	Registry *database.TenantRegistry
}

func NewStudentController(registry *database.TenantRegistry) *StudentController {
	return &StudentController{Registry: registry}
}

func (h *StudentController) tenantDB(c *fiber.Ctx) (*gorm.DB, error) {
	schoolID, err := helper.GetSchoolIDFromContext(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	db, err := h.Registry.Resolve(schoolID.String())
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "koneksi database sekolah gagal")
	}
	return db, nil
}

// -----------------------------------------
// List (GET /students)
// Query filters (opsional):
// - standard, section, q (nama/no admisi, ILIKE)
// - sort_by (name|admission_no|standard), order (asc|desc)
// - page, per_page
// -----------------------------------------
func (h *StudentController) List(c *fiber.Ctx) error {
	db, err := h.tenantDB(c)
	if db == nil {
		return err
	}

	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	q := db.WithContext(c.UserContext()).Model(&model.Student{})

	if v := strings.TrimSpace(c.Query("standard")); v != "" {
		q = q.Where("student_standard = ?", v)
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Where("student_section = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + v + "%"
		q = q.Where("student_name ILIKE ? OR student_admission_no ILIKE ?", like, like)
	}

	// count
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// whitelist sortable keys → kolom fisik
	allowed := map[string]string{
		"name":         "student_name",
		"admission_no": "student_admission_no",
		"standard":     "student_standard",
	}
	order, err := p.SafeOrderClause(allowed, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Student
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}
