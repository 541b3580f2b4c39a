package config

import (
	"errors"
	"strings"
	"time"

	libconfig "urjaportal/backend/libs/config"
	libdb "urjaportal/backend/libs/db"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"AUTH_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN          string        `yaml:"dsn" env:"AUTH_POSTGRES_DSN"`
		AutoMigrate  bool          `yaml:"autoMigrate" env:"AUTH_POSTGRES_AUTO_MIGRATE"`
		MaxOpenConns int           `yaml:"maxOpenConns" env:"AUTH_POSTGRES_MAX_OPEN_CONNS"`
		MaxIdleConns int           `yaml:"maxIdleConns" env:"AUTH_POSTGRES_MAX_IDLE_CONNS"`
		ConnLifetime time.Duration `yaml:"connLifetime" env:"AUTH_POSTGRES_CONN_LIFETIME"`
	} `yaml:"database"`
	JWT struct {
		Secret           string `yaml:"secret" env:"AUTH_JWT_SECRET"`
		Issuer           string `yaml:"issuer" env:"AUTH_JWT_ISSUER"`
		ExpiresInMinutes int    `yaml:"expiresInMinutes" env:"AUTH_JWT_EXPIRES_MINUTES"`
	} `yaml:"jwt"`
	Password struct {
		BcryptCost int `yaml:"bcryptCost" env:"AUTH_BCRYPT_COST"`
	} `yaml:"password"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8081"
	cfg.JWT.Issuer = "urjaportal"
	cfg.JWT.ExpiresInMinutes = 60

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and normalizes defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("config: database DSN is required")
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("config: jwt secret is required")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return errors.New("config: connection limits must not be negative")
	}
	if c.JWT.ExpiresInMinutes <= 0 {
		c.JWT.ExpiresInMinutes = 60
	}
	return nil
}

// HTTPAddress ensures we always return host:port formatted string.
func (c *Config) HTTPAddress() string {
	return libconfig.Address(c.HTTP.Port, "8081")
}

// JWTExpiration converts configured expiry to duration.
func (c *Config) JWTExpiration() time.Duration {
	if c.JWT.ExpiresInMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.JWT.ExpiresInMinutes) * time.Minute
}

// Pool returns connection pool limits; unset values use libdb.DefaultPool.
func (c *Config) Pool() libdb.Pool {
	return libdb.Pool{
		MaxOpen:  c.Database.MaxOpenConns,
		MaxIdle:  c.Database.MaxIdleConns,
		Lifetime: c.Database.ConnLifetime,
	}
}
