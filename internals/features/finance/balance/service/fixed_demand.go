// file: internals/features/finance/balance/service/fixed_demand.go
package service

import (
	"context"
	"errors"
	"log"
)

// =========================================================
// FIXED DEMAND COLLECTOR
// =========================================================

// FixedDemandCollector membaca tabel struktur fee (tuition/hostel/transport,
// plus individual untuk laporan per-siswa) dan mengisi total fixed demand per key.
// WAJIB jalan sebelum CollectionAggregator: ExistingFixedHeadsSet harus terisi
// dulu supaya spot-fee inference tidak dobel hitung.
type FixedDemandCollector struct {
	Reader     SourceReader
	Classifier *FeeHeadClassifier
}

func (c *FixedDemandCollector) Collect(ctx context.Context, year string, accs *AccumulatorSet, filter HeadFilter, roster *RosterIndex) {
	entities := []LogicalEntity{
		EntityTuitionFeeStructure,
		EntityHostelFeeStructure,
		EntityTransportFeeStructure,
	}
	if accs.Grouping() == GroupByStudent {
		entities = append(entities, EntityIndividualFixedFees)
	}

	for _, entity := range entities {
		rows, err := c.Reader.FixedFees(ctx, entity, year)
		if err != nil {
			logSourceErr("fixed", entity, err)
			continue // sumber hilang/rusak = data kosong, laporan tetap jalan
		}
		for _, row := range rows {
			if row.FeeHeading == "" || !filter.Allows(row.FeeHeading) {
				continue
			}
			c.apply(row, accs, roster)
		}
	}
}

func (c *FixedDemandCollector) apply(row FixedFeeRow, accs *AccumulatorSet, roster *RosterIndex) {
	cat := c.Classifier.Classify(row.FeeHeading)

	if accs.Grouping() == GroupByClass {
		acc := accs.Get(accs.keyFor(row.Standard, row.Section, ""))
		contributeFixed(acc, cat, row)
		return
	}

	// Granularitas siswa: baris individual menempel ke satu admission;
	// baris level kelas dibebankan ke setiap siswa kelas itu.
	if row.AdmissionNo != "" {
		acc := accs.Get(accs.keyFor("", "", row.AdmissionNo))
		acc.noteClass(row.Standard, row.Section)
		contributeFixed(acc, cat, row)
		return
	}
	for _, st := range roster.StudentsOf(row.Standard, row.Section) {
		acc := accs.Get(accs.keyFor("", "", st.AdmissionNo))
		acc.noteClass(st.Standard, st.Section)
		contributeFixed(acc, cat, row)
	}
}

func contributeFixed(acc *Accumulator, cat FeeHeadCategory, row FixedFeeRow) {
	b := acc.bucket(cat)
	b.Fixed = b.Fixed.Add(row.Amount)
	addDetail(b.FixedDetail, row.FeeHeading, row.Amount)
	acc.MarkFixedHead(row.FeeHeading)
}

// logSourceErr membedakan tabel hilang (warning) dari kegagalan query (error).
func logSourceErr(phase string, entity LogicalEntity, err error) {
	var unavailable *SourceUnavailableError
	if errors.As(err, &unavailable) {
		log.Printf("[WARN] balance %s: %v", phase, unavailable)
		return
	}
	log.Printf("[ERROR] balance %s: sumber %s gagal dibaca: %v", phase, entity, err)
}
