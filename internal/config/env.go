package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alesr/pricewatch/internal/pkg/money"
)

type Config struct {
	Addr            string        `env:"PRICEWATCH_ADDR" envDefault:":8080"`
	Latency         time.Duration `env:"PRICEWATCH_LATENCY" envDefault:"1500ms"`
	APIBaseURL      string        `env:"PRICEWATCH_API_BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel        string        `env:"PRICEWATCH_LOG_LEVEL" envDefault:"info"`
	Locale          string        `env:"PRICEWATCH_LOCALE" envDefault:"en-IN"`
	Currency        string        `env:"PRICEWATCH_CURRENCY" envDefault:"INR"`
	CORSOrigins     []string      `env:"PRICEWATCH_CORS_ORIGINS" envDefault:"*" envSeparator:","`
	RateLimit       int           `env:"PRICEWATCH_RATE_LIMIT" envDefault:"120"`
	ShutdownTimeout time.Duration `env:"PRICEWATCH_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate is also called after CLI flags override env values.
func (c Config) Validate() error {
	baseURL, err := url.Parse(c.APIBaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return fmt.Errorf("could not validate PRICEWATCH_API_BASE_URL: must be a valid absolute URL")
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return fmt.Errorf("could not validate PRICEWATCH_API_BASE_URL: http or https scheme is required")
	}

	if c.Latency < 0 {
		return fmt.Errorf("could not validate PRICEWATCH_LATENCY: must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("could not validate PRICEWATCH_RATE_LIMIT: must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("could not validate PRICEWATCH_SHUTDOWN_TIMEOUT: must be positive")
	}

	if _, err := money.NewFormatter(c.Locale, c.Currency); err != nil {
		return fmt.Errorf("could not validate PRICEWATCH_LOCALE/PRICEWATCH_CURRENCY: %w", err)
	}
	return nil
}

func (c Config) Formatter() money.Formatter {
	f, err := money.NewFormatter(c.Locale, c.Currency)
	if err != nil {
		return money.Default()
	}
	return f
}
