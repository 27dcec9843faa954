// file: internals/features/finance/balance/service/roster.go
package service

// classKey hanya untuk indeks roster internal.
type classKey struct {
	Standard string
	Section  string
}

// RosterIndex: lookup identitas siswa sekali per run laporan.
type RosterIndex struct {
	byAdmission map[string]RosterEntry
	byClass     map[classKey][]RosterEntry
	byStandard  map[string][]RosterEntry
}

func NewRosterIndex(entries []RosterEntry) *RosterIndex {
	idx := &RosterIndex{
		byAdmission: make(map[string]RosterEntry, len(entries)),
		byClass:     make(map[classKey][]RosterEntry),
		byStandard:  make(map[string][]RosterEntry),
	}
	for _, e := range entries {
		if e.AdmissionNo == "" {
			continue
		}
		idx.byAdmission[e.AdmissionNo] = e
		ck := classKey{Standard: e.Standard, Section: e.Section}
		idx.byClass[ck] = append(idx.byClass[ck], e)
		idx.byStandard[e.Standard] = append(idx.byStandard[e.Standard], e)
	}
	return idx
}

func (r *RosterIndex) Lookup(admissionNo string) (RosterEntry, bool) {
	e, ok := r.byAdmission[admissionNo]
	return e, ok
}

// StudentsOf: anggota sebuah kelas; section kosong berarti seluruh standard.
func (r *RosterIndex) StudentsOf(standard, section string) []RosterEntry {
	if section == "" {
		return r.byStandard[standard]
	}
	return r.byClass[classKey{Standard: standard, Section: section}]
}
