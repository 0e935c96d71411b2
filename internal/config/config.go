package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sitesettings/internal/domain/entities"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the runtime configuration of sitectl. An empty MigrationsPath
// selects the migrations embedded in the binary.
type Config struct {
	StorageDriver   string            `env:"SITE_STORAGE_DRIVER" envDefault:"file"`
	StoragePath     string            `env:"SITE_STORAGE_PATH" envDefault:".sitesettings"`
	DatabaseURL     string            `env:"DATABASE_URL"`
	MigrationsPath  string            `env:"SITE_MIGRATIONS_PATH"`
	SettingsKey     string            `env:"SITE_SETTINGS_KEY" envDefault:"siteSettings"`
	DefaultLanguage entities.Language `env:"SITE_DEFAULT_LANGUAGE" envDefault:"hebrew"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (PM2, CI, ...).
	_ = godotenv.Load()
	return Parse()
}

// Parse reads configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies every rule on the loaded configuration.
func (c *Config) validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(c.StoragePath) == "" {
			return fmt.Errorf("config: SITE_STORAGE_PATH is required for the %s driver", c.StorageDriver)
		}
	case DriverMemory:
	case DriverPostgres:
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	default:
		return fmt.Errorf("config: unknown SITE_STORAGE_DRIVER %q", c.StorageDriver)
	}

	if strings.TrimSpace(c.SettingsKey) == "" {
		return fmt.Errorf("config: SITE_SETTINGS_KEY cannot be empty")
	}
	if !c.DefaultLanguage.Valid() {
		return fmt.Errorf("config: unsupported SITE_DEFAULT_LANGUAGE %q", c.DefaultLanguage)
	}
	return nil
}
