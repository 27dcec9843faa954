// file: internals/features/finance/balance/dto/balance_report_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/balance/service"
)

// =========================================================
// REQUEST
// =========================================================

type BalanceReportQuery struct {
	Year        string `query:"year" validate:"required"`
	FeeHeads    string `query:"fee_heads"` // daftar dipisah koma; kosong = semua
	IncludeMisc bool   `query:"include_misc"`
	StartDate   string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ToRequest menerjemahkan query HTTP ke request engine.
// end_date inklusif di API → digeser +1 hari untuk batas atas eksklusif engine.
func (q BalanceReportQuery) ToRequest() (service.ReportRequest, error) {
	req := service.ReportRequest{
		Year:        strings.TrimSpace(q.Year),
		IncludeMisc: q.IncludeMisc,
	}
	// validator `required` lolos untuk year berisi spasi; tolak di sini
	if req.Year == "" {
		return req, fmt.Errorf("%w: academic year wajib diisi", service.ErrInvalidRequest)
	}
	for _, h := range strings.Split(q.FeeHeads, ",") {
		if h = strings.TrimSpace(h); h != "" {
			req.FeeHeads = append(req.FeeHeads, h)
		}
	}
	if q.StartDate != "" {
		t, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return req, fmt.Errorf("%w: start_date tidak valid", service.ErrInvalidRequest)
		}
		req.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return req, fmt.Errorf("%w: end_date tidak valid", service.ErrInvalidRequest)
		}
		if req.StartDate != nil && t.Before(*req.StartDate) {
			return req, fmt.Errorf("%w: end_date sebelum start_date", service.ErrInvalidRequest)
		}
		end := t.AddDate(0, 0, 1)
		req.EndDate = &end
	}
	return req, nil
}

// =========================================================
// RESPONSE
// =========================================================

type BalanceRowResponse struct {
	AdmissionNo   string `json:"admission_no,omitempty"`
	StudentName   string `json:"student_name,omitempty"`
	Standard      string `json:"standard"`
	Section       string `json:"section,omitempty"`
	BoardingPoint string `json:"boarding_point,omitempty"`

	AcademicFixed       decimal.Decimal `json:"academic_fixed"`
	AcademicPaid        decimal.Decimal `json:"academic_paid"`
	AcademicBalance     decimal.Decimal `json:"academic_balance"`
	AcademicFixedDetail string          `json:"academic_fixed_detail,omitempty"`
	AcademicPaidDetail  string          `json:"academic_paid_detail,omitempty"`

	TransportFixed       decimal.Decimal `json:"transport_fixed"`
	TransportPaid        decimal.Decimal `json:"transport_paid"`
	TransportBalance     decimal.Decimal `json:"transport_balance"`
	TransportFixedDetail string          `json:"transport_fixed_detail,omitempty"`
	TransportPaidDetail  string          `json:"transport_paid_detail,omitempty"`

	ConcessionTotal  decimal.Decimal `json:"concession_total"`
	ConcessionDetail string          `json:"concession_detail,omitempty"`

	TotalFixed   decimal.Decimal `json:"total_fixed"`
	ActualPaid   decimal.Decimal `json:"actual_paid"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalBalance decimal.Decimal `json:"total_balance"`

	Narrative string `json:"narrative,omitempty"`
}

func ToBalanceRowResponse(r service.BalanceRow) BalanceRowResponse {
	return BalanceRowResponse{
		AdmissionNo:   r.AdmissionNo,
		StudentName:   r.StudentName,
		Standard:      r.Standard,
		Section:       r.Section,
		BoardingPoint: r.BoardingPoint,

		AcademicFixed:       r.AcademicFixed,
		AcademicPaid:        r.AcademicPaid,
		AcademicBalance:     r.AcademicBalance,
		AcademicFixedDetail: r.AcademicFixedDetail,
		AcademicPaidDetail:  r.AcademicPaidDetail,

		TransportFixed:       r.TransportFixed,
		TransportPaid:        r.TransportPaid,
		TransportBalance:     r.TransportBalance,
		TransportFixedDetail: r.TransportFixedDetail,
		TransportPaidDetail:  r.TransportPaidDetail,

		ConcessionTotal:  r.ConcessionTotal,
		ConcessionDetail: r.ConcessionDetail,

		TotalFixed:   r.TotalFixed,
		ActualPaid:   r.ActualPaid,
		TotalPaid:    r.TotalPaid,
		TotalBalance: r.TotalBalance,

		Narrative: r.Narrative,
	}
}

func ToBalanceRowResponses(rows []service.BalanceRow) []BalanceRowResponse {
	out := make([]BalanceRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToBalanceRowResponse(r))
	}
	return out
}
