package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libdb "urjaportal/backend/libs/db"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("BILLING_POSTGRES_DSN", "postgres://localhost/billing")
	t.Setenv("BILLING_POSTGRES_MAX_OPEN_CONNS", "10")
	t.Setenv("BILLING_POSTGRES_CONN_LIFETIME", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8083", cfg.HTTPAddress())
	assert.Equal(t, libdb.Pool{MaxOpen: 10, Lifetime: 15 * time.Minute}, cfg.Pool())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Database.DSN = "postgres://localhost/billing"
	assert.NoError(t, cfg.Validate())

	cfg.Database.MaxIdleConns = -1
	assert.Error(t, cfg.Validate())
}
