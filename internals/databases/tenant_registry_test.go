// file: internals/databases/tenant_registry_test.go
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTenantRegistryEnforcesMinimumLimit(t *testing.T) {
	r := NewTenantRegistry("host=db-%s", 0)
	assert.Equal(t, 1, r.limit)

	r = NewTenantRegistry("host=db-%s", -3)
	assert.Equal(t, 1, r.limit)

	r = NewTenantRegistry("host=db-%s", 25)
	assert.Equal(t, 25, r.limit)
}

func TestTenantRegistryEmptyLifecycle(t *testing.T) {
	r := NewTenantRegistry("host=db-%s", 5)

	assert.Zero(t, r.Len())
	assert.NoError(t, r.Ping(context.Background()), "tanpa pool hidup, health harus OK")
	r.Close()
	assert.Zero(t, r.Len())
}
