// Package config loads the backend's YAML configuration file. Values that
// are secrets (the provider API key, the database URL) can also come from
// the environment so the file can be committed without them.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ProviderConfig scopes the upstream ticketing queries to the site's region.
type ProviderConfig struct {
	// APIKey authenticates with the Discovery API. Falls back to the
	// TICKETMASTER_API_KEY environment variable when empty.
	APIKey string `yaml:"api_key"`
	// BaseURL overrides the production API endpoint, mainly for tests.
	BaseURL string `yaml:"base_url"`

	CountryCode string `yaml:"country_code"`
	GeoPoint    string `yaml:"geo_point"`
	Radius      string `yaml:"radius"`
	Unit        string `yaml:"unit"`
	PageSize    int    `yaml:"page_size"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the REST API.
	Listen string `yaml:"listen"`

	// Environment is "development" or "production"; it controls log
	// verbosity.
	Environment string `yaml:"environment"`

	// CORSOrigins lists the request origins allowed to call the API from a
	// browser.
	CORSOrigins []string `yaml:"cors_origins"`

	// DB is a PostgreSQL connection URL for the provider fetch cache.
	// Empty disables caching. Falls back to the DB environment variable.
	DB string `yaml:"db"`

	// CacheTTLMinutes is how long a cached provider record stays fresh.
	CacheTTLMinutes int `yaml:"cache_ttl_minutes"`

	Provider ProviderConfig `yaml:"provider"`
}

// Default returns the configuration used when no file is present: the
// original deployment's North Brabant region settings.
func Default() Config {
	return Config{
		Listen:          ":8080",
		Environment:     "development",
		CacheTTLMinutes: 10,
		Provider: ProviderConfig{
			CountryCode: "NL",
			GeoPoint:    "51.52575,5.1114",
			Radius:      "80",
			Unit:        "km",
			PageSize:    20,
		},
	}
}

// CacheTTL returns the cache freshness window as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Load reads the configuration file at path, layered over Default. A missing
// file is not an error; the defaults plus environment variables apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			// fall through to env handling below
		} else if err != nil {
			return cfg, err
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = os.Getenv("TICKETMASTER_API_KEY")
	}
	if cfg.DB == "" {
		cfg.DB = os.Getenv("DB")
	}

	return cfg, nil
}
