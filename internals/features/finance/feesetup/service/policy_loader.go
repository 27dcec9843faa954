// file: internals/features/finance/feesetup/service/policy_loader.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/feesetup/model"
)

// GormPolicyLoader membaca baris fee_category_policies milik tenant.
// Baris tidak ada = pakai default engine (bukan error); tabel tidak ada
// akan muncul sebagai error dan engine tetap fallback ke default.
type GormPolicyLoader struct {
	DB *gorm.DB
}

func NewGormPolicyLoader(db *gorm.DB) *GormPolicyLoader {
	return &GormPolicyLoader{DB: db}
}

func (l *GormPolicyLoader) TransportPolicy(ctx context.Context) ([]string, []string, error) {
	var p model.FeeCategoryPolicy
	err := l.DB.WithContext(ctx).
		Order("policy_created_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return []string(p.PolicyTransportHeadings), []string(p.PolicyTransportPatterns), nil
}
