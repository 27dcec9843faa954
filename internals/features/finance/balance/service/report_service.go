// file: internals/features/finance/balance/service/report_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// =========================================================
// BALANCE SERVICE — orkestrasi empat varian laporan
// =========================================================

type ReportVariant int

const (
	VariantClassSummary ReportVariant = iota
	VariantClassDetail
	VariantStudentSummary
	VariantStudentDetail
)

func (v ReportVariant) grouping() Grouping {
	if v == VariantStudentSummary || v == VariantStudentDetail {
		return GroupByStudent
	}
	return GroupByClass
}

// ReportRequest: input satu panggilan laporan. Divalidasi SEBELUM query apa pun.
type ReportRequest struct {
	Year        string
	FeeHeads    []string
	IncludeMisc bool
	StartDate   *time.Time
	EndDate     *time.Time
}

// ErrInvalidRequest menandai kesalahan input pemanggil (bukan server fault).
var ErrInvalidRequest = errors.New("invalid request")

func (r ReportRequest) Validate() error {
	if strings.TrimSpace(r.Year) == "" {
		return fmt.Errorf("%w: academic year wajib diisi", ErrInvalidRequest)
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return fmt.Errorf("%w: end_date sebelum start_date", ErrInvalidRequest)
	}
	return nil
}

// PolicyLoader memasok override kebijakan klasifikasi per sekolah.
// nil / error = pakai default engine.
type PolicyLoader interface {
	TransportPolicy(ctx context.Context) (headings []string, patterns []string, err error)
}

type BalanceService struct {
	Reader SourceReader
	Policy PolicyLoader // opsional
}

func NewBalanceService(reader SourceReader, policy PolicyLoader) *BalanceService {
	return &BalanceService{Reader: reader, Policy: policy}
}

// Report menjalankan satu run laporan: fixed demand dulu, baru koleksi,
// lalu rakit baris terurut. Seluruh state run bersifat request-local.
func (s *BalanceService) Report(ctx context.Context, variant ReportVariant, req ReportRequest) ([]BalanceRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	classifier := s.buildClassifier(ctx, req.Year)
	roster := s.loadRoster(ctx)
	filter := NewHeadFilter(req.FeeHeads)
	accs := NewAccumulatorSet(variant.grouping())

	collector := &FixedDemandCollector{Reader: s.Reader, Classifier: classifier}
	collector.Collect(ctx, req.Year, accs, filter, roster)

	aggregator := &CollectionAggregator{Reader: s.Reader, Classifier: classifier}
	aggregator.Aggregate(ctx, req.Year, accs, filter, req.IncludeMisc, req.StartDate, req.EndDate)

	opt := AssembleOptions{
		WithDetails:   variant == VariantClassDetail || variant == VariantStudentDetail,
		WithNarrative: variant == VariantStudentDetail,
		FilterActive:  filter.Active(),
	}
	return ReportAssembler{}.Assemble(accs, roster, opt), nil
}

// buildClassifier: heading dari tabel struktur transport + override policy tenant.
// Klasifikasi dibekukan di sini untuk satu run — tidak ada re-klasifikasi di tengah.
func (s *BalanceService) buildClassifier(ctx context.Context, year string) *FeeHeadClassifier {
	headings, err := s.Reader.DistinctHeadings(ctx, EntityTransportFeeStructure, year)
	if err != nil {
		logSourceErr("classifier", EntityTransportFeeStructure, err)
	}

	var patterns []string
	if s.Policy != nil {
		extra, pats, err := s.Policy.TransportPolicy(ctx)
		if err != nil {
			log.Printf("[WARN] balance: policy tenant tidak terbaca, pakai default: %v", err)
		} else {
			headings = append(headings, extra...)
			patterns = pats
		}
	}
	return NewFeeHeadClassifier(NewClassifierPolicy(headings, patterns))
}

func (s *BalanceService) loadRoster(ctx context.Context) *RosterIndex {
	entries, err := s.Reader.Roster(ctx)
	if err != nil {
		// Tanpa roster laporan tetap jalan, hanya kolom identitas yang kosong
		log.Printf("[WARN] balance: roster tidak terbaca: %v", err)
	}
	return NewRosterIndex(entries)
}

// =========================================================
// GROUPED FEE HEADINGS (pengisi kontrol filter)
// =========================================================

type GroupedFeeHeadings struct {
	Structured []string `json:"structured_headings"`
	AdHoc      []string `json:"ad_hoc_headings"`
}

// GroupedFeeHeadings membaca sumber YANG SAMA dengan komputasi utama:
// structured = distinct heading tabel struktur; ad_hoc = heading log koleksi
// (harian, plus miscellaneous bila diminta) yang tidak ada di structured.
func (s *BalanceService) GroupedFeeHeadings(ctx context.Context, year string, includeMisc bool) (GroupedFeeHeadings, error) {
	if strings.TrimSpace(year) == "" {
		return GroupedFeeHeadings{}, fmt.Errorf("%w: academic year wajib diisi", ErrInvalidRequest)
	}

	structuredSet := make(map[string]string)
	for _, entity := range []LogicalEntity{EntityTuitionFeeStructure, EntityHostelFeeStructure, EntityTransportFeeStructure, EntityIndividualFixedFees} {
		heads, err := s.Reader.DistinctHeadings(ctx, entity, year)
		if err != nil {
			logSourceErr("headings", entity, err)
			continue
		}
		for _, h := range heads {
			structuredSet[canonHead(h)] = h
		}
	}

	adHocSet := make(map[string]string)
	logEntities := []LogicalEntity{EntityDailyCollections}
	if includeMisc {
		logEntities = append(logEntities, EntityMiscCollections)
	}
	for _, entity := range logEntities {
		heads, err := s.Reader.DistinctHeadings(ctx, entity, year)
		if err != nil {
			logSourceErr("headings", entity, err)
			continue
		}
		for _, h := range heads {
			key := canonHead(h)
			if _, ok := structuredSet[key]; ok {
				continue
			}
			adHocSet[key] = h
		}
	}

	return GroupedFeeHeadings{
		Structured: sortedValues(structuredSet),
		AdHoc:      sortedValues(adHocSet),
	}, nil
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
