package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"LIMIT": "25", "BAD": "not-a-number"}

	assert.Equal(t, 25, GetInt(cfg, "LIMIT", 10))
	assert.Equal(t, 10, GetInt(cfg, "BAD", 10))
	assert.Equal(t, 10, GetInt(cfg, "MISSING", 10))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "maybe"}

	assert.True(t, GetBool(cfg, "ON", false))
	assert.False(t, GetBool(cfg, "OFF", true))
	assert.True(t, GetBool(cfg, "BAD", true))
}

func TestGetSeconds(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "45", "BAD": "soon"}

	assert.Equal(t, 45*time.Second, GetSeconds(cfg, "TIMEOUT", 30*time.Second))
	assert.Equal(t, 30*time.Second, GetSeconds(cfg, "BAD", 30*time.Second))
	assert.Equal(t, 30*time.Second, GetSeconds(cfg, "MISSING", 30*time.Second))
}

func TestSplit(t *testing.T) {
	key, value := split("DB_HOST=localhost")
	assert.Equal(t, "DB_HOST", key)
	assert.Equal(t, "localhost", value)

	// Values may themselves contain an equals sign
	key, value = split("DSN=postgres://u:p@h/db?sslmode=disable")
	assert.Equal(t, "DSN", key)
	assert.Equal(t, "postgres://u:p@h/db?sslmode=disable", value)

	key, value = split("NO_VALUE")
	assert.Equal(t, "NO_VALUE", key)
	assert.Equal(t, "", value)
}
