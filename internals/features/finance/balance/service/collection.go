// file: internals/features/finance/balance/service/collection.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =========================================================
// COLLECTION AGGREGATOR
// =========================================================

// CollectionAggregator membaca log koleksi (harian, plus miscellaneous bila
// diminta), menjumlah paid/concession per (key, heading), lalu menyalurkan
// tiap grup ke bucket academic/transport dan memicu spot-fee inference.
// Jalankan SETELAH FixedDemandCollector.
type CollectionAggregator struct {
	Reader     SourceReader
	Classifier *FeeHeadClassifier
	Inferencer SpotFeeInferencer
}

// collGroup: agregat satu (key, heading) sebelum masuk akumulator.
type collGroup struct {
	key      GroupKey
	heading  string
	standard string
	section  string

	paid       decimal.Decimal
	concession decimal.Decimal

	narrative   string
	narrativeAt time.Time
}

type collGroupKey struct {
	key     GroupKey
	heading string // kanonik
}

func (a *CollectionAggregator) Aggregate(ctx context.Context, year string, accs *AccumulatorSet, filter HeadFilter, includeMisc bool, from, to *time.Time) {
	entities := []LogicalEntity{EntityDailyCollections}
	if includeMisc {
		entities = append(entities, EntityMiscCollections)
	}

	// Tahap 1: grup per (key, heading). Penjumlahan komutatif, jadi urutan
	// kedatangan baris dalam satu grup tidak mengubah hasil.
	groups := make(map[collGroupKey]*collGroup)
	for _, entity := range entities {
		rows, err := a.Reader.Collections(ctx, entity, year, from, to)
		if err != nil {
			logSourceErr("collection", entity, err)
			continue
		}
		for _, row := range rows {
			if row.FeeHeading == "" || !filter.Allows(row.FeeHeading) {
				continue
			}
			key := accs.keyFor(row.Standard, row.Section, row.AdmissionNo)
			gk := collGroupKey{key: key, heading: canonHead(row.FeeHeading)}
			g, ok := groups[gk]
			if !ok {
				g = &collGroup{key: key, heading: row.FeeHeading, standard: row.Standard, section: row.Section}
				groups[gk] = g
			}
			g.paid = g.paid.Add(row.Paid)
			g.concession = g.concession.Add(row.Concession)
			if row.Narrative != "" && (g.narrativeAt.IsZero() || !row.CollectedAt.Before(g.narrativeAt)) {
				g.narrative = row.Narrative
				g.narrativeAt = row.CollectedAt
			}
		}
	}

	// Tahap 2: proses grup terurut supaya output run demi run identik.
	ordered := make([]*collGroup, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.key != b.key {
			if a.key.Standard != b.key.Standard {
				return a.key.Standard < b.key.Standard
			}
			if a.key.Section != b.key.Section {
				return a.key.Section < b.key.Section
			}
			return a.key.AdmissionNo < b.key.AdmissionNo
		}
		return canonHead(a.heading) < canonHead(b.heading)
	})

	for _, g := range ordered {
		a.applyGroup(accs, g)
	}
}

func (a *CollectionAggregator) applyGroup(accs *AccumulatorSet, g *collGroup) {
	acc := accs.Get(g.key)
	acc.noteClass(g.standard, g.section)

	cat := a.Classifier.Classify(g.heading)
	b := acc.bucket(cat)

	b.Paid = b.Paid.Add(g.paid)
	addDetail(b.PaidDetail, g.heading, g.paid)

	if g.concession.IsPositive() {
		b.Concession = b.Concession.Add(g.concession)
		addDetail(b.ConcessionDetail, g.heading, g.concession)
		acc.ConcessionTotal = acc.ConcessionTotal.Add(g.concession)
		addDetail(acc.ConcessionDetail, g.heading, g.concession)
	}

	a.Inferencer.MaybeInferFixed(acc, cat, g.heading, g.paid.Add(g.concession))
	acc.noteNarrative(g.narrative, g.narrativeAt)
}
