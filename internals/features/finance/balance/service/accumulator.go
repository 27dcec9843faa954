// file: internals/features/finance/balance/service/accumulator.go
package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// =========================================================
// GROUPING & AKUMULATOR (state satu run laporan, tidak persist)
// =========================================================

type Grouping int

const (
	GroupByClass Grouping = iota
	GroupByStudent
)

// GroupKey: (standard, section) untuk laporan kelas, admission no untuk siswa.
type GroupKey struct {
	Standard    string
	Section     string
	AdmissionNo string
}

// Bucket menampung angka satu kategori (academic atau transport).
type Bucket struct {
	Fixed      decimal.Decimal
	Paid       decimal.Decimal
	Concession decimal.Decimal

	FixedDetail      map[string]decimal.Decimal
	PaidDetail       map[string]decimal.Decimal
	ConcessionDetail map[string]decimal.Decimal
}

func newBucket() *Bucket {
	return &Bucket{
		FixedDetail:      make(map[string]decimal.Decimal),
		PaidDetail:       make(map[string]decimal.Decimal),
		ConcessionDetail: make(map[string]decimal.Decimal),
	}
}

// Accumulator: satu per GroupKey; dibuat saat pertama disentuh,
// dibuang setelah laporan dirakit.
type Accumulator struct {
	Key       GroupKey
	Academic  *Bucket
	Transport *Bucket

	// Konsesi juga dilacak menyeluruh untuk kolom concession laporan
	ConcessionTotal  decimal.Decimal
	ConcessionDetail map[string]decimal.Decimal

	// Narasi bebas terakhir (last-write-wins berdasarkan waktu koleksi)
	Narrative   string
	narrativeAt time.Time

	// Standard/section yang pernah terlihat — fallback identitas kalau
	// siswa tidak ada di roster
	seenStandard string
	seenSection  string

	// ExistingFixedHeadsSet: heading yang sudah punya fixed demand nyata;
	// penentu apakah spot-fee inference boleh jalan
	fixedHeads map[string]struct{}
}

func newAccumulator(key GroupKey) *Accumulator {
	return &Accumulator{
		Key:              key,
		Academic:         newBucket(),
		Transport:        newBucket(),
		ConcessionDetail: make(map[string]decimal.Decimal),
		fixedHeads:       make(map[string]struct{}),
	}
}

func (a *Accumulator) bucket(cat FeeHeadCategory) *Bucket {
	if cat == CategoryTransport {
		return a.Transport
	}
	return a.Academic
}

func (a *Accumulator) HasFixedHead(heading string) bool {
	_, ok := a.fixedHeads[canonHead(heading)]
	return ok
}

func (a *Accumulator) MarkFixedHead(heading string) {
	a.fixedHeads[canonHead(heading)] = struct{}{}
}

func (a *Accumulator) noteClass(standard, section string) {
	if a.seenStandard == "" && standard != "" {
		a.seenStandard = standard
	}
	if a.seenSection == "" && section != "" {
		a.seenSection = section
	}
}

func (a *Accumulator) noteNarrative(narrative string, at time.Time) {
	if narrative == "" {
		return
	}
	if a.narrativeAt.IsZero() || !at.Before(a.narrativeAt) {
		a.Narrative = narrative
		a.narrativeAt = at
	}
}

// AccumulatorSet: seluruh akumulator satu run, ter-key sesuai granularitas.
type AccumulatorSet struct {
	grouping Grouping
	items    map[GroupKey]*Accumulator
}

func NewAccumulatorSet(grouping Grouping) *AccumulatorSet {
	return &AccumulatorSet{
		grouping: grouping,
		items:    make(map[GroupKey]*Accumulator),
	}
}

func (s *AccumulatorSet) Grouping() Grouping { return s.grouping }

func (s *AccumulatorSet) keyFor(standard, section, admissionNo string) GroupKey {
	if s.grouping == GroupByStudent {
		return GroupKey{AdmissionNo: admissionNo}
	}
	return GroupKey{Standard: standard, Section: section}
}

// Get membuat akumulator saat referensi pertama.
func (s *AccumulatorSet) Get(key GroupKey) *Accumulator {
	if acc, ok := s.items[key]; ok {
		return acc
	}
	acc := newAccumulator(key)
	s.items[key] = acc
	return acc
}

func (s *AccumulatorSet) Len() int { return len(s.items) }

// =========================================================
// FILTER FEE HEAD
// =========================================================

// HeadFilter: allow-list heading; kosong = semua heading lolos.
type HeadFilter map[string]struct{}

func NewHeadFilter(heads []string) HeadFilter {
	f := make(HeadFilter)
	for _, h := range heads {
		if key := canonHead(h); key != "" {
			f[key] = struct{}{}
		}
	}
	return f
}

func (f HeadFilter) Active() bool { return len(f) > 0 }

func (f HeadFilter) Allows(heading string) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[canonHead(heading)]
	return ok
}

func addDetail(m map[string]decimal.Decimal, heading string, amount decimal.Decimal) {
	m[heading] = m[heading].Add(amount)
}
