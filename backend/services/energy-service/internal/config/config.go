package config

import (
	"errors"
	"strings"
	"time"

	libconfig "urjaportal/backend/libs/config"
)

// Config defines energy service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"ENERGY_HTTP_PORT"`
	} `yaml:"http"`
	Redis struct {
		Addr     string        `yaml:"addr" env:"ENERGY_REDIS_ADDR"`
		Password string        `yaml:"password" env:"ENERGY_REDIS_PASSWORD"`
		DB       int           `yaml:"db" env:"ENERGY_REDIS_DB"`
		TTL      time.Duration `yaml:"ttl" env:"ENERGY_REDIS_TTL"`
	} `yaml:"redis"`
	Services struct {
		BillingURL string `yaml:"billingUrl" env:"BILLING_SERVICE_URL"`
	} `yaml:"services"`
	WS struct {
		PingInterval time.Duration `yaml:"pingInterval" env:"ENERGY_WS_PING_INTERVAL"`
		ReadTimeout  time.Duration `yaml:"readTimeout" env:"ENERGY_WS_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"writeTimeout" env:"ENERGY_WS_WRITE_TIMEOUT"`
	} `yaml:"ws"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8084"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Services.BillingURL = "http://localhost:8083"

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
	if strings.TrimSpace(c.Redis.Addr) == "" {
		return errors.New("config: redis addr required")
	}
	if strings.TrimSpace(c.Services.BillingURL) == "" {
		return errors.New("config: billing service url required")
	}
	if c.Redis.TTL < 0 {
		return errors.New("config: redis ttl must not be negative")
	}
	return nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	return libconfig.Address(c.HTTP.Port, "8084")
}

// PingInterval returns the WebSocket keepalive period.
func (c *Config) PingInterval() time.Duration {
	if c.WS.PingInterval <= 0 {
		return 30 * time.Second
	}
	return c.WS.PingInterval
}

// ReadTimeout returns how long a WebSocket may stay silent, pongs included.
func (c *Config) ReadTimeout() time.Duration {
	if c.WS.ReadTimeout <= 0 {
		return 60 * time.Second
	}
	return c.WS.ReadTimeout
}

// WriteTimeout returns the WebSocket write deadline.
func (c *Config) WriteTimeout() time.Duration {
	if c.WS.WriteTimeout <= 0 {
		return 10 * time.Second
	}
	return c.WS.WriteTimeout
}
