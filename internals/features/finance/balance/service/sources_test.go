// file: internals/features/finance/balance/service/sources_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeYear(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2025-2026", "2025_2026"},
		{"2025/26", "2025_26"},
		{"2025 26!", "2025_26_"},
		{"AY2025", "AY2025"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeYear(tt.in), "input %q", tt.in)
	}
}

func TestResolveTable(t *testing.T) {
	table, err := resolveTable(EntityTuitionFeeStructure, "2025-2026")
	require.NoError(t, err)
	assert.Equal(t, "tuition_fee_structures_2025_2026", table)

	table, err = resolveTable(EntityMiscCollections, "2025/26")
	require.NoError(t, err)
	assert.Equal(t, "misc_fee_collections_2025_26", table)
}

func TestResolveTableRejectsUnknownEntity(t *testing.T) {
	_, err := resolveTable(LogicalEntity("students; DROP TABLE x"), "2025")
	assert.Error(t, err, "entitas di luar daftar tidak boleh menghasilkan nama tabel")
}

func TestToDecimalCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "0"},
		{"int64", int64(1500), "1500"},
		{"int", 42, "42"},
		{"float64", 12.5, "12.5"},
		{"string", "  99.90 ", "99.9"},
		{"bytes", []byte("250"), "250"},
		{"decimal", decimal.NewFromInt(7), "7"},
		{"garbage string", "abc", "0"},
		{"bool", true, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			got := toDecimal(tt.in)
			assert.True(t, got.Equal(want), "want %s got %s", want, got)
		})
	}
}

func TestToStringTrims(t *testing.T) {
	assert.Equal(t, "", toString(nil))
	assert.Equal(t, "5", toString(" 5 "))
	assert.Equal(t, "A", toString([]byte(" A ")))
	assert.Equal(t, "12", toString(int64(12)))
}

func TestToTime(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, ts, toTime(ts))
	assert.Equal(t, ts, toTime("2025-06-01T10:30:00Z"))
	assert.True(t, toTime("bukan tanggal").IsZero())
	assert.True(t, toTime(nil).IsZero())
}

func TestFirstStringAliasOrder(t *testing.T) {
	rec := map[string]interface{}{
		"fee_heading": "Tuition Fee",
		"fee_head":    "Old Column",
	}
	assert.Equal(t, "Tuition Fee", firstString(rec, "fee_heading", "fee_head"))

	rec = map[string]interface{}{"fee_head": "Old Column"}
	assert.Equal(t, "Old Column", firstString(rec, "fee_heading", "fee_head"))

	assert.Equal(t, "", firstString(map[string]interface{}{}, "fee_heading", "fee_head"))
}

func TestSourceUnavailableErrorMessage(t *testing.T) {
	err := &SourceUnavailableError{Table: "hostel_fee_structures_2025_2026"}
	assert.Contains(t, err.Error(), "hostel_fee_structures_2025_2026")
}
