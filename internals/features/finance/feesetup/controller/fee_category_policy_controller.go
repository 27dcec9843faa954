// file: internals/features/finance/feesetup/controller/fee_category_policy_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	database "schoolku_backend/internals/databases"
	balance "schoolku_backend/internals/features/finance/balance/service"
	"schoolku_backend/internals/features/finance/feesetup/dto"
	"schoolku_backend/internals/features/finance/feesetup/model"
	helper "schoolku_backend/internals/helpers"
)

type FeeCategoryPolicyController struct {
	Registry *database.TenantRegistry
	Validate *validator.Validate
}

func NewFeeCategoryPolicyController(registry *database.TenantRegistry) *FeeCategoryPolicyController {
	return &FeeCategoryPolicyController{
		Registry: registry,
		Validate: validator.New(),
	}
}

func (h *FeeCategoryPolicyController) tenantDB(c *fiber.Ctx) (*gorm.DB, error) {
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
// Get (GET /fee-category-policy)
// Baris belum ada → kembalikan default engine supaya UI tetap bisa render.
// -----------------------------------------
func (h *FeeCategoryPolicyController) Get(c *fiber.Ctx) error {
	db, err := h.tenantDB(c)
	if db == nil {
		return err
	}

	var p model.FeeCategoryPolicy
	findErr := db.WithContext(c.UserContext()).
		Order("policy_created_at DESC").
		First(&p).Error
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "default policy", dto.FeeCategoryPolicyResponse{
			TransportPatterns: append([]string(nil), balance.DefaultTransportPatterns...),
			TransportHeadings: []string{},
		})
	}
	if findErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, findErr.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeCategoryPolicyResponse(p))
}

// -----------------------------------------
// Update (PUT /fee-category-policy)
// Upsert satu baris kebijakan per sekolah.
// -----------------------------------------
func (h *FeeCategoryPolicyController) Update(c *fiber.Ctx) error {
	db, err := h.tenantDB(c)
	if db == nil {
		return err
	}

	var in dto.FeeCategoryPolicyUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.FeeCategoryPolicy
	findErr := db.WithContext(c.UserContext()).
		Order("policy_created_at DESC").
		First(&p).Error
	if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, findErr.Error())
	}

	p.PolicyTransportHeadings = pq.StringArray(in.TransportHeadings)
	p.PolicyTransportPatterns = pq.StringArray(in.TransportPatterns)

	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		if err := db.WithContext(c.UserContext()).Create(&p).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		if err := db.WithContext(c.UserContext()).Save(&p).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonUpdated(c, "policy tersimpan", dto.ToFeeCategoryPolicyResponse(p))
}
