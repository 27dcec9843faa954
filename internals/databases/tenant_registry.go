// file: internals/databases/tenant_registry.go
package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
)

// TenantRegistry memetakan school_id → pool koneksi database sekolah itu.
// Ukurannya dibatasi; pool yang paling lama tidak dipakai ditutup saat
// kapasitas penuh. Registry ini di-inject ke handler, bukan variabel global.
type TenantRegistry struct {
	mu          sync.Mutex
	dsnTemplate string // harus mengandung satu %s untuk school id
	limit       int
	pools       map[string]*tenantPool
}

type tenantPool struct {
	db       *gorm.DB
	lastUsed time.Time
}

func NewTenantRegistry(dsnTemplate string, limit int) *TenantRegistry {
	if limit < 1 {
		limit = 1
	}
	return &TenantRegistry{
		dsnTemplate: dsnTemplate,
		limit:       limit,
		pools:       make(map[string]*tenantPool),
	}
}

// Resolve mengembalikan pool untuk satu tenant; membuka koneksi baru bila belum ada.
func (r *TenantRegistry) Resolve(schoolID string) (*gorm.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pools[schoolID]; ok {
		p.lastUsed = time.Now()
		return p.db, nil
	}

	dsn := fmt.Sprintf(r.dsnTemplate, schoolID)
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open tenant db %s: %w", schoolID, err)
	}
	tunePool(db)

	if len(r.pools) >= r.limit {
		r.evictOldestLocked()
	}
	r.pools[schoolID] = &tenantPool{db: db, lastUsed: time.Now()}
	log.Printf("[INFO] tenant pool dibuka untuk school=%s (total=%d)", schoolID, len(r.pools))
	return db, nil
}

func (r *TenantRegistry) evictOldestLocked() {
	var oldestID string
	var oldestAt time.Time
	for id, p := range r.pools {
		if oldestID == "" || p.lastUsed.Before(oldestAt) {
			oldestID, oldestAt = id, p.lastUsed
		}
	}
	if oldestID == "" {
		return
	}
	closePool(r.pools[oldestID].db)
	delete(r.pools, oldestID)
	log.Printf("[INFO] tenant pool dievict untuk school=%s", oldestID)
}

// Len mengembalikan jumlah pool yang sedang hidup.
func (r *TenantRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pools)
}

// Ping mengecek semua pool yang hidup; dipakai endpoint /health.
func (r *TenantRegistry) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.pools {
		sqlDB, err := p.db.DB()
		if err != nil {
			return fmt.Errorf("tenant %s: %w", id, err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("tenant %s: %w", id, err)
		}
	}
	return nil
}

// Close menutup seluruh pool; dipanggil saat shutdown.
func (r *TenantRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.pools {
		closePool(p.db)
		delete(r.pools, id)
	}
}

func tunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// ⚖️ Sesuaikan dengan limit Supabase/PgBouncer
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func closePool(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
