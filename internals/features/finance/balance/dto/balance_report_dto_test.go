// file: internals/features/finance/balance/dto/balance_report_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/balance/service"
)

func TestToRequestSplitsFeeHeads(t *testing.T) {
	q := BalanceReportQuery{Year: " 2025-2026 ", FeeHeads: "Tuition Fee, Bus Fee,,  "}
	req, err := q.ToRequest()
	require.NoError(t, err)

	assert.Equal(t, "2025-2026", req.Year)
	assert.Equal(t, []string{"Tuition Fee", "Bus Fee"}, req.FeeHeads)
}

func TestToRequestShiftsEndDateExclusive(t *testing.T) {
	q := BalanceReportQuery{Year: "2025-2026", StartDate: "2025-06-01", EndDate: "2025-06-30"}
	req, err := q.ToRequest()
	require.NoError(t, err)

	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *req.StartDate)
	// end_date inklusif 30 Juni → batas eksklusif 1 Juli
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *req.EndDate)
}

func TestToRequestRejectsBlankYear(t *testing.T) {
	// tag `required` validator lolos untuk year berisi spasi saja;
	// ToRequest harus menolaknya sendiri supaya handler tidak lanjut
	// dengan request kosong
	_, err := BalanceReportQuery{Year: "   "}.ToRequest()
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = BalanceReportQuery{}.ToRequest()
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestToRequestRejectsBadDates(t *testing.T) {
	_, err := BalanceReportQuery{Year: "2025-2026", StartDate: "01-06-2025"}.ToRequest()
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = BalanceReportQuery{Year: "2025-2026", StartDate: "2025-07-01", EndDate: "2025-06-01"}.ToRequest()
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}
