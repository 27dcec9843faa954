// file: internals/features/finance/balance/service/assembler.go
package service

import (
	"sort"
	"strconv"
)

// =========================================================
// REPORT ASSEMBLER
// =========================================================

type AssembleOptions struct {
	WithDetails   bool // varian detail menyertakan string per-heading
	WithNarrative bool // hanya varian student detail
	FilterActive  bool // baris kosong dibuang hanya saat filter aktif
}

// ReportAssembler membentuk BalanceRow terurut dari akumulator + roster.
type ReportAssembler struct{}

func (ReportAssembler) Assemble(accs *AccumulatorSet, roster *RosterIndex, opt AssembleOptions) []BalanceRow {
	rows := make([]BalanceRow, 0, accs.Len())
	for _, acc := range accs.items {
		row := ComputeBalance(acc)

		if accs.Grouping() == GroupByStudent {
			row.AdmissionNo = acc.Key.AdmissionNo
			if st, ok := roster.Lookup(acc.Key.AdmissionNo); ok {
				row.StudentName = st.Name
				row.Standard = st.Standard
				row.Section = st.Section
				row.BoardingPoint = st.BoardingPoint
			} else {
				// siswa tak ada di roster: pakai kelas yang terlihat di sumber
				row.Standard = acc.seenStandard
				row.Section = acc.seenSection
			}
		} else {
			row.Standard = acc.Key.Standard
			row.Section = acc.Key.Section
		}

		if !opt.WithDetails {
			row.AcademicFixedDetail = ""
			row.AcademicPaidDetail = ""
			row.TransportFixedDetail = ""
			row.TransportPaidDetail = ""
			row.ConcessionDetail = ""
		}
		if !opt.WithNarrative {
			row.Narrative = ""
		}

		// Saat filter aktif, baris tanpa demand/paid/concession untuk heading
		// terfilter dibuang. Tanpa filter, semua baris bersejarah ikut.
		if opt.FilterActive && row.TotalFixed.IsZero() && row.ActualPaid.IsZero() && row.ConcessionTotal.IsZero() {
			continue
		}
		rows = append(rows, row)
	}

	byStudent := accs.Grouping() == GroupByStudent
	sort.Slice(rows, func(i, j int) bool {
		return lessBalanceRow(rows[i], rows[j], byStudent)
	})
	return rows
}

// lessBalanceRow: kelas diurut (standard, section); siswa ditambah nama,
// nama kosong diurut paling akhir di kelasnya.
func lessBalanceRow(a, b BalanceRow, byStudent bool) bool {
	if c := compareStandard(a.Standard, b.Standard); c != 0 {
		return c < 0
	}
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	if !byStudent {
		return false
	}
	if (a.StudentName == "") != (b.StudentName == "") {
		return b.StudentName == "" // nama kosong di belakang
	}
	if a.StudentName != b.StudentName {
		return a.StudentName < b.StudentName
	}
	return a.AdmissionNo < b.AdmissionNo
}

// compareStandard: standard numerik ("1".."12") dibanding sebagai angka,
// sisanya leksikal ("LKG", "UKG" setelah angka).
func compareStandard(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
