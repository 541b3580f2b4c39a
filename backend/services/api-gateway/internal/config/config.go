package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "urjaportal/backend/libs/config"
)

// Config defines gateway configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"API_GATEWAY_HTTP_PORT"`
	} `yaml:"http"`
	JWT struct {
		Secret string `yaml:"secret" env:"API_GATEWAY_JWT_SECRET"`
		Issuer string `yaml:"issuer" env:"API_GATEWAY_JWT_ISSUER"`
	} `yaml:"jwt"`
	Services struct {
		AuthURL    string `yaml:"authUrl" env:"AUTH_SERVICE_URL"`
		BillingURL string `yaml:"billingUrl" env:"BILLING_SERVICE_URL"`
		EnergyURL  string `yaml:"energyUrl" env:"ENERGY_SERVICE_URL"`
	} `yaml:"services"`
	HTTPClient struct {
		TimeoutSeconds int `yaml:"timeoutSeconds" env:"API_GATEWAY_HTTP_TIMEOUT"`
	} `yaml:"httpClient"`
	RateLimit struct {
		RPS   float64 `yaml:"rps" env:"API_GATEWAY_RATE_LIMIT_RPS"`
		Burst int     `yaml:"burst" env:"API_GATEWAY_RATE_LIMIT_BURST"`
	} `yaml:"rateLimit"`
}

// Load configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.JWT.Issuer = "urjaportal"
	cfg.Services.AuthURL = "http://localhost:8081"
	cfg.Services.BillingURL = "http://localhost:8083"
	cfg.Services.EnergyURL = "http://localhost:8084"
	cfg.HTTPClient.TimeoutSeconds = 5
	cfg.RateLimit.RPS = 50
	cfg.RateLimit.Burst = 100

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
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("config: jwt secret required")
	}
	for name, url := range map[string]string{
		"auth":    c.Services.AuthURL,
		"billing": c.Services.BillingURL,
		"energy":  c.Services.EnergyURL,
	} {
		if strings.TrimSpace(url) == "" {
			return fmt.Errorf("config: %s service url required", name)
		}
	}
	if c.RateLimit.RPS < 0 {
		return errors.New("config: rate limit must not be negative")
	}
	return nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	return libconfig.Address(c.HTTP.Port, "8080")
}

// HTTPTimeout returns http client timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPClient.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.HTTPClient.TimeoutSeconds) * time.Second
}
