package config

import (
	"errors"
	"strings"
	"time"

	libconfig "urjaportal/backend/libs/config"
	libdb "urjaportal/backend/libs/db"
)

// Config defines billing service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"BILLING_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN          string        `yaml:"dsn" env:"BILLING_POSTGRES_DSN"`
		AutoMigrate  bool          `yaml:"autoMigrate" env:"BILLING_POSTGRES_AUTO_MIGRATE"`
		MaxOpenConns int           `yaml:"maxOpenConns" env:"BILLING_POSTGRES_MAX_OPEN_CONNS"`
		MaxIdleConns int           `yaml:"maxIdleConns" env:"BILLING_POSTGRES_MAX_IDLE_CONNS"`
		ConnLifetime time.Duration `yaml:"connLifetime" env:"BILLING_POSTGRES_CONN_LIFETIME"`
	} `yaml:"database"`
}

// Load reads BILLING_* variables over the optional CONFIG_FILE.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8083"

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("config: database dsn required")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return errors.New("config: connection limits must not be negative")
	}
	return nil
}

// HTTPAddress returns the listen address.
func (c *Config) HTTPAddress() string {
	return libconfig.Address(c.HTTP.Port, "8083")
}

// Pool returns connection pool limits; unset values use libdb.DefaultPool.
func (c *Config) Pool() libdb.Pool {
	return libdb.Pool{
		MaxOpen:  c.Database.MaxOpenConns,
		MaxIdle:  c.Database.MaxIdleConns,
		Lifetime: c.Database.ConnLifetime,
	}
}
