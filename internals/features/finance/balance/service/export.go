// file: internals/features/finance/balance/service/export.go
package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// =========================================================
// EXPORT — XLSX & PDF untuk laporan balance per-siswa
// =========================================================

var exportHeaders = []string{
	"Admission No", "Student Name", "Standard", "Section", "Boarding Point",
	"Academic Fixed", "Academic Paid", "Academic Balance",
	"Transport Fixed", "Transport Paid", "Transport Balance",
	"Concession", "Total Fixed", "Actual Paid", "Total Paid", "Total Balance",
}

func exportCells(row BalanceRow) []string {
	return []string{
		row.AdmissionNo, row.StudentName, row.Standard, row.Section, row.BoardingPoint,
		row.AcademicFixed.StringFixed(2), row.AcademicPaid.StringFixed(2), row.AcademicBalance.StringFixed(2),
		row.TransportFixed.StringFixed(2), row.TransportPaid.StringFixed(2), row.TransportBalance.StringFixed(2),
		row.ConcessionTotal.StringFixed(2), row.TotalFixed.StringFixed(2), row.ActualPaid.StringFixed(2),
		row.TotalPaid.StringFixed(2), row.TotalBalance.StringFixed(2),
	}
}

// BuildBalanceXLSX merender baris laporan menjadi workbook satu sheet.
func BuildBalanceXLSX(rows []BalanceRow, year string) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "balance"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "Balance List "+year)
	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, val := range exportCells(row) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+3)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildBalancePDF merender versi PDF landscape sederhana.
func BuildBalancePDF(rows []BalanceRow, year string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Balance List %s", year))
	pdf.Ln(10)

	// Kolom ringkas saja; detail per-heading tidak muat di halaman
	cols := []struct {
		label string
		width float64
		pick  func(BalanceRow) string
	}{
		{"Adm No", 20, func(r BalanceRow) string { return r.AdmissionNo }},
		{"Name", 52, func(r BalanceRow) string { return r.StudentName }},
		{"Std", 14, func(r BalanceRow) string { return r.Standard }},
		{"Sec", 12, func(r BalanceRow) string { return r.Section }},
		{"Acad Fixed", 26, func(r BalanceRow) string { return r.AcademicFixed.StringFixed(2) }},
		{"Acad Paid", 26, func(r BalanceRow) string { return r.AcademicPaid.StringFixed(2) }},
		{"Trans Fixed", 26, func(r BalanceRow) string { return r.TransportFixed.StringFixed(2) }},
		{"Trans Paid", 26, func(r BalanceRow) string { return r.TransportPaid.StringFixed(2) }},
		{"Concession", 26, func(r BalanceRow) string { return r.ConcessionTotal.StringFixed(2) }},
		{"Balance", 26, func(r BalanceRow) string { return r.TotalBalance.StringFixed(2) }},
	}

	pdf.SetFont("Arial", "B", 9)
	for _, col := range cols {
		pdf.CellFormat(col.width, 6, col.label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for _, col := range cols {
			pdf.CellFormat(col.width, 6, col.pick(row), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
