package config

import (
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain"
	"github.com/diegoclair/fractal-rotation-bot/internal/domain/entity"
)

const (
	DataSourceJSON   = "json"
	DataSourceSQLite = "sqlite"
)

type Config struct {
	WebhookURL      string        `env:"WEBHOOK_URL"`
	WebhookUsername string        `env:"WEBHOOK_USERNAME"`
	RoleID          string        `env:"ROLE_ID"`
	JokeAPIURL      string        `env:"JOKE_API_URL"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	DataSource   string `env:"DATA_SOURCE" envDefault:"json"`
	DataDir      string `env:"DATA_DIR"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./fractals.db"`

	CMFractals       []string `env:"CM_FRACTALS" envSeparator:","`
	AnnoyingFractals []string `env:"ANNOYING_FRACTALS" envSeparator:","`
	NamedEffect      string   `env:"NAMED_EFFECT"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// defaults holds the values shared with the domain package. env.Parse only
// overwrites a field when its variable is set.
func defaults() *Config {
	return &Config{
		WebhookUsername:  domain.DefaultWebhookUsername,
		JokeAPIURL:       domain.DefaultJokeAPIURL,
		CMFractals:       slices.Clone(domain.DefaultCMFractals),
		AnnoyingFractals: slices.Clone(domain.DefaultAnnoyingFractals),
		NamedEffect:      domain.DefaultNamedEffect,
	}
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}

	switch cfg.DataSource {
	case DataSourceJSON, DataSourceSQLite:
	default:
		return nil, errors.Newf("invalid DATA_SOURCE %q, use %q or %q", cfg.DataSource, DataSourceJSON, DataSourceSQLite)
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, errors.Newf("HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}

// Classification returns the fractal sets called out in the announcement
func (c *Config) Classification() entity.Classification {
	return entity.Classification{
		Featured:    c.CMFractals,
		Undesirable: c.AnnoyingFractals,
		NamedEffect: c.NamedEffect,
	}
}
