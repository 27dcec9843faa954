// file: internals/features/finance/balance/service/sources.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/school/students/model"
)

// =========================================================
// LOGICAL ENTITIES → TABEL FISIK
// =========================================================

// LogicalEntity adalah nama sumber data yang dikenal engine. Tabel fisiknya
// dipartisi per tahun ajaran; pemetaan hanya boleh terjadi di resolveTable.
type LogicalEntity string

const (
	EntityTuitionFeeStructure   LogicalEntity = "tuition_fee_structures"
	EntityHostelFeeStructure    LogicalEntity = "hostel_fee_structures"
	EntityTransportFeeStructure LogicalEntity = "transport_fee_structures"
	EntityIndividualFixedFees   LogicalEntity = "individual_fixed_fees"
	EntityDailyCollections      LogicalEntity = "daily_fee_collections"
	EntityMiscCollections       LogicalEntity = "misc_fee_collections"
)

// sanitizeYear: setiap rune non-alfanumerik menjadi '_'.
// Hasilnya hanya dipakai untuk identifier yang dirakit resolveTable,
// tidak pernah untuk nilai parameter query.
func sanitizeYear(year string) string {
	var b strings.Builder
	for _, r := range year {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// resolveTable adalah satu-satunya tempat nama tabel per-tahun dirakit.
func resolveTable(entity LogicalEntity, year string) (string, error) {
	switch entity {
	case EntityTuitionFeeStructure, EntityHostelFeeStructure, EntityTransportFeeStructure,
		EntityIndividualFixedFees, EntityDailyCollections, EntityMiscCollections:
	default:
		return "", fmt.Errorf("logical entity %q tidak dikenal", entity)
	}
	return string(entity) + "_" + sanitizeYear(year), nil
}

// =========================================================
// ERROR SUMBER
// =========================================================

// SourceUnavailableError: tabel sumber tidak ada di tenant ini.
// Dibedakan dari kegagalan query sungguhan; dua-duanya berujung data kosong,
// tapi log dan test bisa membedakannya.
type SourceUnavailableError struct {
	Table string
}

func (e *SourceUnavailableError) Error() string {
	return "source table " + e.Table + " tidak tersedia"
}

// =========================================================
// ROW TYPES
// =========================================================

type FixedFeeRow struct {
	Standard    string
	Section     string
	AdmissionNo string // hanya terisi dari sumber individual
	FeeHeading  string
	AccountHead string
	Amount      decimal.Decimal
}

type CollectionRow struct {
	AdmissionNo string
	Standard    string
	Section     string
	FeeHeading  string
	Paid        decimal.Decimal
	Concession  decimal.Decimal
	Narrative   string
	CollectedAt time.Time
}

type RosterEntry struct {
	AdmissionNo   string
	Name          string
	Standard      string
	Section       string
	BoardingPoint string
}

// SourceReader adalah kontrak akses data tenant yang dikonsumsi engine.
// Implementasi produksi membaca database sekolah; test memakai fake in-memory.
type SourceReader interface {
	FixedFees(ctx context.Context, entity LogicalEntity, year string) ([]FixedFeeRow, error)
	Collections(ctx context.Context, entity LogicalEntity, year string, from, to *time.Time) ([]CollectionRow, error)
	DistinctHeadings(ctx context.Context, entity LogicalEntity, year string) ([]string, error)
	Roster(ctx context.Context) ([]RosterEntry, error)
}

// =========================================================
// IMPLEMENTASI GORM
// =========================================================

type GormSourceReader struct {
	DB *gorm.DB
}

func NewGormSourceReader(db *gorm.DB) *GormSourceReader {
	return &GormSourceReader{DB: db}
}

func (r *GormSourceReader) tableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := r.DB.WithContext(ctx).
		Raw("SELECT to_regclass(?) IS NOT NULL", table).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

// fetchRecords mengambil seluruh baris tabel sebagai record longgar.
// Skema kolom per tenant bisa beda-beda; field yang hilang dibaca nol/kosong.
func (r *GormSourceReader) fetchRecords(ctx context.Context, entity LogicalEntity, year string, conds []string, args []interface{}) ([]map[string]interface{}, error) {
	table, err := resolveTable(entity, year)
	if err != nil {
		return nil, err
	}
	ok, err := r.tableExists(ctx, table)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &SourceUnavailableError{Table: table}
	}

	query := "SELECT * FROM " + table
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	var recs []map[string]interface{}
	if err := r.DB.WithContext(ctx).Raw(query, args...).Scan(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *GormSourceReader) FixedFees(ctx context.Context, entity LogicalEntity, year string) ([]FixedFeeRow, error) {
	recs, err := r.fetchRecords(ctx, entity, year, nil, nil)
	if err != nil {
		return nil, err
	}
	rows := make([]FixedFeeRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, FixedFeeRow{
			Standard:    toString(rec["standard"]),
			Section:     toString(rec["section"]),
			AdmissionNo: toString(rec["admission_no"]),
			FeeHeading:  strings.TrimSpace(firstString(rec, "fee_heading", "fee_head")),
			AccountHead: toString(rec["account_head"]),
			Amount:      toDecimal(rec["amount"]),
		})
	}
	return rows, nil
}

func (r *GormSourceReader) Collections(ctx context.Context, entity LogicalEntity, year string, from, to *time.Time) ([]CollectionRow, error) {
	var conds []string
	var args []interface{}
	if from != nil {
		conds = append(conds, "collected_at >= ?")
		args = append(args, *from)
	}
	if to != nil {
		// batas atas eksklusif; pemanggil sudah menggeser tanggal akhir +1 hari
		conds = append(conds, "collected_at < ?")
		args = append(args, *to)
	}
	recs, err := r.fetchRecords(ctx, entity, year, conds, args)
	if err != nil {
		return nil, err
	}
	rows := make([]CollectionRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, CollectionRow{
			AdmissionNo: toString(rec["admission_no"]),
			Standard:    toString(rec["standard"]),
			Section:     toString(rec["section"]),
			FeeHeading:  strings.TrimSpace(firstString(rec, "fee_head", "fee_heading")),
			Paid:        toDecimal(rec["paid_amount"]),
			Concession:  toDecimal(rec["concession_amount"]),
			Narrative:   toString(rec["narrative"]),
			CollectedAt: toTime(rec["collected_at"]),
		})
	}
	return rows, nil
}

func (r *GormSourceReader) DistinctHeadings(ctx context.Context, entity LogicalEntity, year string) ([]string, error) {
	recs, err := r.fetchRecords(ctx, entity, year, nil, nil)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(recs))
	var heads []string
	for _, rec := range recs {
		h := strings.TrimSpace(firstString(rec, "fee_heading", "fee_head"))
		if h == "" {
			continue
		}
		key := strings.ToLower(h)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		heads = append(heads, h)
	}
	return heads, nil
}

func (r *GormSourceReader) Roster(ctx context.Context) ([]RosterEntry, error) {
	var students []studentModel.Student
	if err := r.DB.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, err
	}
	entries := make([]RosterEntry, 0, len(students))
	for _, s := range students {
		entries = append(entries, RosterEntry{
			AdmissionNo:   s.StudentAdmissionNo,
			Name:          s.StudentName,
			Standard:      s.StudentStandard,
			Section:       s.StudentSection,
			BoardingPoint: s.StudentBoardingPoint,
		})
	}
	return entries, nil
}

// =========================================================
// KOERSI NILAI LONGGAR
// =========================================================

// toDecimal: konversi numerik total — nilai rusak menjadi nol, tidak pernah panic.
func toDecimal(v interface{}) decimal.Decimal {
	switch t := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return t
	case int64:
		return decimal.NewFromInt(t)
	case int32:
		return decimal.NewFromInt32(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case float64:
		return decimal.NewFromFloat(t)
	case float32:
		return decimal.NewFromFloat32(t)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(t)); err == nil {
			return d
		}
		return decimal.Zero
	case []byte:
		if d, err := decimal.NewFromString(strings.TrimSpace(string(t))); err == nil {
			return d
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func toTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// firstString mengembalikan kolom pertama yang terisi dari daftar nama alias.
func firstString(rec map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := toString(rec[k]); s != "" {
			return s
		}
	}
	return ""
}
