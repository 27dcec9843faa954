// file: internals/features/finance/balance/service/balance.go
package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// =========================================================
// BALANCE CALCULATOR (fungsi murni, tanpa I/O)
// =========================================================

// Entri detail dengan |nilai| <= 1 dibuang — peredam noise pembulatan.
var detailEpsilon = decimal.NewFromInt(1)

// BalanceRow: unit output final; dibuat segar per request, tidak dimutasi
// setelah dirakit.
type BalanceRow struct {
	AdmissionNo   string
	StudentName   string
	Standard      string
	Section       string
	BoardingPoint string

	AcademicFixed       decimal.Decimal
	AcademicPaid        decimal.Decimal
	AcademicBalance     decimal.Decimal
	AcademicFixedDetail string
	AcademicPaidDetail  string

	TransportFixed       decimal.Decimal
	TransportPaid        decimal.Decimal
	TransportBalance     decimal.Decimal
	TransportFixedDetail string
	TransportPaidDetail  string

	ConcessionTotal  decimal.Decimal
	ConcessionDetail string

	TotalFixed   decimal.Decimal
	ActualPaid   decimal.Decimal
	TotalPaid    decimal.Decimal
	TotalBalance decimal.Decimal

	Narrative string
}

// ComputeBalance menggabungkan fixed/paid/concession satu akumulator menjadi
// angka balance. Konsesi melunasi demand persis seperti pembayaran, tapi
// dilaporkan terpisah dan tidak masuk actual_paid.
func ComputeBalance(acc *Accumulator) BalanceRow {
	a := acc.Academic
	t := acc.Transport

	row := BalanceRow{
		AcademicFixed:   a.Fixed.Round(2),
		AcademicPaid:    a.Paid.Round(2),
		AcademicBalance: floorZero(a.Fixed.Sub(a.Paid).Sub(a.Concession)).Round(2),

		TransportFixed:   t.Fixed.Round(2),
		TransportPaid:    t.Paid.Round(2),
		TransportBalance: floorZero(t.Fixed.Sub(t.Paid).Sub(t.Concession)).Round(2),

		ConcessionTotal: acc.ConcessionTotal.Round(2),
		Narrative:       acc.Narrative,
	}

	totalFixed := a.Fixed.Add(t.Fixed)
	actualPaid := a.Paid.Add(t.Paid)
	totalPaid := actualPaid.Add(acc.ConcessionTotal)

	row.TotalFixed = totalFixed.Round(2)
	row.ActualPaid = actualPaid.Round(2)
	row.TotalPaid = totalPaid.Round(2)
	// Floor juga di level baris, konsisten dengan per-bucket
	row.TotalBalance = floorZero(totalFixed.Sub(totalPaid)).Round(2)

	row.AcademicFixedDetail = renderDetail(a.FixedDetail)
	row.AcademicPaidDetail = renderDetail(a.PaidDetail)
	row.TransportFixedDetail = renderDetail(t.FixedDetail)
	row.TransportPaidDetail = renderDetail(t.PaidDetail)
	row.ConcessionDetail = renderDetail(acc.ConcessionDetail)

	return row
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// renderDetail: "heading: amount" dipisah koma, heading terurut, entri ~0 dibuang.
func renderDetail(detail map[string]decimal.Decimal) string {
	heads := make([]string, 0, len(detail))
	for h, v := range detail {
		if v.Abs().Cmp(detailEpsilon) <= 0 {
			continue
		}
		heads = append(heads, h)
	}
	sort.Strings(heads)

	parts := make([]string, 0, len(heads))
	for _, h := range heads {
		parts = append(parts, h+": "+detail[h].StringFixed(2))
	}
	return strings.Join(parts, ", ")
}
