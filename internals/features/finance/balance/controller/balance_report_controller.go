// file: internals/features/finance/balance/controller/balance_report_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	database "schoolku_backend/internals/databases"
	"schoolku_backend/internals/features/finance/balance/dto"
	"schoolku_backend/internals/features/finance/balance/service"
	feesetup "schoolku_backend/internals/features/finance/feesetup/service"
	helper "schoolku_backend/internals/helpers"
)

type BalanceReportController struct {
	Registry *database.TenantRegistry
	Validate *validator.Validate
}

func NewBalanceReportController(registry *database.TenantRegistry) *BalanceReportController {
	return &BalanceReportController{
		Registry: registry,
		Validate: validator.New(),
	}
}

// serviceFor merakit engine untuk tenant request ini. Tidak ada state yang
// dibagi antar request; reader & policy loader menempel ke pool tenant.
func (h *BalanceReportController) serviceFor(c *fiber.Ctx) (*service.BalanceService, error) {
	schoolID, err := helper.GetSchoolIDFromContext(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	db, err := h.Registry.Resolve(schoolID.String())
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "koneksi database sekolah gagal")
	}
	return service.NewBalanceService(
		service.NewGormSourceReader(db),
		feesetup.NewGormPolicyLoader(db),
	), nil
}

// parseQuery memvalidasi input pemanggil sebelum query apa pun dijalankan.
// ok=false berarti response error sudah ditulis; jangan lanjut ke engine.
func (h *BalanceReportController) parseQuery(c *fiber.Ctx) (service.ReportRequest, bool, error) {
	var q dto.BalanceReportQuery
	if err := c.QueryParser(&q); err != nil {
		return service.ReportRequest{}, false, helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}
	if err := h.Validate.Struct(q); err != nil {
		return service.ReportRequest{}, false, helper.ValidationError(c, err)
	}
	req, err := q.ToRequest()
	if err != nil {
		return service.ReportRequest{}, false, helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return req, true, nil
}

func (h *BalanceReportController) report(c *fiber.Ctx, variant service.ReportVariant) error {
	svc, err := h.serviceFor(c)
	if svc == nil {
		return err
	}
	req, ok, err := h.parseQuery(c)
	if !ok {
		return err
	}

	rows, err := svc.Report(c.UserContext(), variant, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.ToBalanceRowResponses(rows), nil)
}

// -----------------------------------------
// Empat varian laporan balance
// -----------------------------------------

// GET /classes — ringkasan per kelas
func (h *BalanceReportController) ClassSummary(c *fiber.Ctx) error {
	return h.report(c, service.VariantClassSummary)
}

// GET /classes/detail — per kelas + rincian per-heading
func (h *BalanceReportController) ClassDetail(c *fiber.Ctx) error {
	return h.report(c, service.VariantClassDetail)
}

// GET /students — ringkasan per siswa
func (h *BalanceReportController) StudentSummary(c *fiber.Ctx) error {
	return h.report(c, service.VariantStudentSummary)
}

// GET /students/detail — per siswa + rincian per-heading + narasi
func (h *BalanceReportController) StudentDetail(c *fiber.Ctx) error {
	return h.report(c, service.VariantStudentDetail)
}

// -----------------------------------------
// GET /fee-heads/grouped — pengisi kontrol filter
// -----------------------------------------
func (h *BalanceReportController) GroupedFeeHeadings(c *fiber.Ctx) error {
	svc, err := h.serviceFor(c)
	if svc == nil {
		return err
	}
	year := c.Query("year")
	includeMisc := c.QueryBool("include_misc")

	grouped, err := svc.GroupedFeeHeadings(c.UserContext(), year, includeMisc)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", grouped)
}

// -----------------------------------------
// Export laporan per-siswa (XLSX / PDF)
// -----------------------------------------

func (h *BalanceReportController) exportRows(c *fiber.Ctx) ([]service.BalanceRow, string, error) {
	svc, err := h.serviceFor(c)
	if svc == nil {
		return nil, "", err
	}
	req, ok, err := h.parseQuery(c)
	if !ok {
		return nil, "", err
	}
	rows, err := svc.Report(c.UserContext(), service.VariantStudentDetail, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return nil, "", helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return nil, "", helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return rows, req.Year, nil
}

func (h *BalanceReportController) ExportXLSX(c *fiber.Ctx) error {
	rows, year, err := h.exportRows(c)
	if rows == nil {
		return err
	}
	buf, err := service.BuildBalanceXLSX(rows, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	filename := fmt.Sprintf("balance-list-%s-%s.xlsx", year, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}

func (h *BalanceReportController) ExportPDF(c *fiber.Ctx) error {
	rows, year, err := h.exportRows(c)
	if rows == nil {
		return err
	}
	buf, err := service.BuildBalancePDF(rows, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	filename := fmt.Sprintf("balance-list-%s-%s.pdf", year, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}
