// file: internals/features/finance/balance/service/export_test.go
package service

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleExportRows() []BalanceRow {
	return []BalanceRow{
		{
			AdmissionNo: "S1", StudentName: "Anita", Standard: "5", Section: "A",
			AcademicFixed: decimal.NewFromInt(1000), AcademicPaid: decimal.NewFromInt(600),
			AcademicBalance: decimal.NewFromInt(400),
			TotalFixed:      decimal.NewFromInt(1000), ActualPaid: decimal.NewFromInt(600),
			TotalPaid: decimal.NewFromInt(600), TotalBalance: decimal.NewFromInt(400),
		},
		{
			AdmissionNo: "S2", StudentName: "Budi", Standard: "5", Section: "A",
			TransportFixed: decimal.NewFromInt(500), TransportPaid: decimal.NewFromInt(500),
			TotalFixed: decimal.NewFromInt(500), ActualPaid: decimal.NewFromInt(500),
			TotalPaid: decimal.NewFromInt(500),
		},
	}
}

func TestBuildBalanceXLSX(t *testing.T) {
	buf, err := BuildBalanceXLSX(sampleExportRows(), "2025-2026")
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("balance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Balance List 2025-2026", title)

	head, err := f.GetCellValue("balance", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Admission No", head)

	// baris data pertama mulai di baris 3
	adm, err := f.GetCellValue("balance", "A3")
	require.NoError(t, err)
	assert.Equal(t, "S1", adm)

	balance, err := f.GetCellValue("balance", "P3")
	require.NoError(t, err)
	assert.Equal(t, "400.00", balance)

	adm2, err := f.GetCellValue("balance", "A4")
	require.NoError(t, err)
	assert.Equal(t, "S2", adm2)
}

func TestBuildBalancePDF(t *testing.T) {
	buf, err := BuildBalancePDF(sampleExportRows(), "2025-2026")
	require.NoError(t, err)
	require.NotEmpty(t, buf)
	assert.True(t, bytes.HasPrefix(buf, []byte("%PDF")), "output harus dokumen PDF")
}

func TestExportCellsMatchHeaderCount(t *testing.T) {
	for _, row := range sampleExportRows() {
		assert.Len(t, exportCells(row), len(exportHeaders))
	}
}
