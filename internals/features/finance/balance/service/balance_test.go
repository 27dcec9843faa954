// file: internals/features/finance/balance/service/balance_test.go
package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBalancePerBucketFloor(t *testing.T) {
	acc := newAccumulator(GroupKey{Standard: "5", Section: "A"})
	acc.Academic.Fixed = decimal.NewFromInt(1000)
	acc.Academic.Paid = decimal.NewFromInt(400)
	acc.Transport.Fixed = decimal.NewFromInt(300)
	acc.Transport.Paid = decimal.NewFromInt(500) // overpay transport

	row := ComputeBalance(acc)

	assertDec(t, "600", row.AcademicBalance)
	assertDec(t, "0", row.TransportBalance, "bucket overpay dipatok nol")
	assertDec(t, "1300", row.TotalFixed)
	assertDec(t, "900", row.ActualPaid)
	// Floor per baris: 1300 - 900 = 400, bukan 600 + 0
	assertDec(t, "400", row.TotalBalance)
}

func TestComputeBalanceConcessionExcludedFromActualPaid(t *testing.T) {
	acc := newAccumulator(GroupKey{AdmissionNo: "S1"})
	acc.Academic.Fixed = decimal.NewFromInt(1000)
	acc.Academic.Paid = decimal.NewFromInt(700)
	acc.Academic.Concession = decimal.NewFromInt(300)
	acc.ConcessionTotal = decimal.NewFromInt(300)

	row := ComputeBalance(acc)

	assertDec(t, "700", row.ActualPaid)
	assertDec(t, "1000", row.TotalPaid)
	assertDec(t, "0", row.AcademicBalance)
	assertDec(t, "0", row.TotalBalance)
	assertDec(t, "300", row.ConcessionTotal)
}

func TestRenderDetailSortedAndEpsilonFiltered(t *testing.T) {
	detail := map[string]decimal.Decimal{
		"Tuition Fee": decimal.NewFromInt(1000),
		"Exam Fee":    decimal.NewFromInt(200),
		"Rounding":    decimal.NewFromFloat(0.5), // |v| <= 1 dibuang
		"Neg Noise":   decimal.NewFromFloat(-1),
	}
	assert.Equal(t, "Exam Fee: 200.00, Tuition Fee: 1000.00", renderDetail(detail))
	assert.Equal(t, "", renderDetail(nil))
}

func TestCompareStandardNumericBeforeLexical(t *testing.T) {
	assert.Negative(t, compareStandard("2", "10"))
	assert.Positive(t, compareStandard("10", "2"))
	assert.Negative(t, compareStandard("12", "LKG"), "angka sebelum non-angka")
	assert.Positive(t, compareStandard("UKG", "LKG"))
	assert.Zero(t, compareStandard("LKG", "LKG"))
}

func TestHeadFilter(t *testing.T) {
	f := NewHeadFilter(nil)
	assert.False(t, f.Active())
	assert.True(t, f.Allows("anything"))

	f = NewHeadFilter([]string{" Tuition Fee ", ""})
	assert.True(t, f.Active())
	assert.True(t, f.Allows("tuition fee"))
	assert.False(t, f.Allows("Bus Fee"))
}
