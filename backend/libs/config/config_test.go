package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	HTTP struct {
		Port string `yaml:"port" env:"SAMPLE_HTTP_PORT"`
	} `yaml:"http"`
	Redis struct {
		Addr string        `yaml:"addr"`
		DB   int           `yaml:"db"`
		TTL  time.Duration `yaml:"ttl"`
	} `yaml:"redis"`
	Languages []string `yaml:"languages" env:"SAMPLE_LANGUAGES"`
	RateLimit float64  `yaml:"rateLimit" env:"SAMPLE_RATE_LIMIT"`
	Debug     bool     `yaml:"debug" env:"SAMPLE_DEBUG"`
	Ignored   string   `env:"-"`
}

func TestLoadConfigFromFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: "9000"
redis:
  addr: "localhost:6379"
  db: 2
  ttl: 90s
languages: [en]
rateLimit: 5
`), 0o600))

	t.Setenv("SAMPLE_HTTP_PORT", "9100")
	t.Setenv("REDIS_TTL", "2h")
	t.Setenv("SAMPLE_LANGUAGES", "en, mr,")
	t.Setenv("SAMPLE_DEBUG", "true")
	t.Setenv("IGNORED", "nope")

	var cfg sampleConfig
	require.NoError(t, LoadConfigFrom(path, &cfg))

	assert.Equal(t, "9100", cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 2*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, []string{"en", "mr"}, cfg.Languages)
	assert.InDelta(t, 5.0, cfg.RateLimit, 1e-9)
	assert.True(t, cfg.Debug)
	assert.Empty(t, cfg.Ignored)
}

func TestLoadConfigEnvOnly(t *testing.T) {
	t.Setenv("REDIS_DB", "7")

	var cfg sampleConfig
	require.NoError(t, LoadConfigFrom("", &cfg))
	assert.Equal(t, 7, cfg.Redis.DB)
}

func TestLoadConfigErrors(t *testing.T) {
	assert.Error(t, LoadConfigFrom("", nil))

	var notStruct int
	assert.Error(t, LoadConfigFrom("", &notStruct))

	assert.Error(t, LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"), &sampleConfig{}))

	t.Setenv("REDIS_TTL", "soon")
	err := LoadConfigFrom("", &sampleConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_TTL")
}

func TestLoaderUsesLookup(t *testing.T) {
	env := map[string]string{
		"SAMPLE_HTTP_PORT":  " 8080 ",
		"REDIS_DB":          " 3 ",
		"SAMPLE_RATE_LIMIT": "2.5",
	}
	l := loader{lookup: func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}}

	var cfg sampleConfig
	require.NoError(t, l.load("", &cfg))
	assert.Equal(t, " 8080 ", cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)
}

func TestLoaderRejectsUnsupportedField(t *testing.T) {
	var cfg struct {
		Limits map[string]int `env:"LIMITS"`
	}
	l := loader{lookup: func(k string) (string, bool) { return "a=1", k == "LIMITS" }}

	err := l.load("", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LIMITS")
}

func TestAddress(t *testing.T) {
	assert.Equal(t, ":8083", Address("", "8083"))
	assert.Equal(t, ":9000", Address(" 9000 ", "8083"))
	assert.Equal(t, ":9000", Address(":9000", "8083"))
	assert.Equal(t, "127.0.0.1:9000", Address("127.0.0.1:9000", "8083"))
}
