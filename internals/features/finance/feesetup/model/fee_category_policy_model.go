// file: internals/features/finance/feesetup/model/fee_category_policy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — kebijakan klasifikasi fee head (academic vs transport)
// Satu baris per sekolah; kosong = pakai default engine.
// =========================================================

type FeeCategoryPolicy struct {
	// PK
	PolicyID uuid.UUID `gorm:"column:policy_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"policy_id"`

	// Heading yang DIPAKSA masuk bucket transport (di luar tabel struktur transport)
	PolicyTransportHeadings pq.StringArray `gorm:"column:policy_transport_headings;type:text[]" json:"policy_transport_headings,omitempty"`

	// Pola substring fallback; default engine: transp, bus, van
	PolicyTransportPatterns pq.StringArray `gorm:"column:policy_transport_patterns;type:text[]" json:"policy_transport_patterns,omitempty"`

	// Ruang konfigurasi tambahan (belum dipetakan ke kolom)
	PolicyExtra datatypes.JSON `gorm:"column:policy_extra" json:"policy_extra,omitempty"`

	// Timestamps (eksplisit)
	PolicyCreatedAt time.Time      `gorm:"column:policy_created_at;not null;default:now()" json:"policy_created_at"`
	PolicyUpdatedAt time.Time      `gorm:"column:policy_updated_at;not null;default:now()" json:"policy_updated_at"`
	PolicyDeletedAt gorm.DeletedAt `gorm:"column:policy_deleted_at;index" json:"-"`
}

// TableName overrides the table name used by FeeCategoryPolicy to `fee_category_policies`
func (FeeCategoryPolicy) TableName() string {
	return "fee_category_policies"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *FeeCategoryPolicy) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PolicyCreatedAt.IsZero() {
		m.PolicyCreatedAt = now
	}
	m.PolicyUpdatedAt = now
	return nil
}

func (m *FeeCategoryPolicy) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PolicyUpdatedAt = time.Now()
	return nil
}
