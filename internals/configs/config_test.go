package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "nilai")
	assert.Equal(t, "nilai", GetEnv("CONFIG_TEST_KEY"))
	assert.Equal(t, "fallback", GetEnv("CONFIG_TEST_MISSING", "fallback"))
	assert.Equal(t, "", GetEnv("CONFIG_TEST_MISSING"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CONFIG_TEST_INT", "12")
	assert.Equal(t, 12, GetEnvInt("CONFIG_TEST_INT", 5))

	t.Setenv("CONFIG_TEST_INT", "bukan angka")
	assert.Equal(t, 5, GetEnvInt("CONFIG_TEST_INT", 5))

	t.Setenv("CONFIG_TEST_INT", "-3")
	assert.Equal(t, 5, GetEnvInt("CONFIG_TEST_INT", 5), "nilai non-positif pakai default")
}
