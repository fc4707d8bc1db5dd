// Package config loads server settings from the environment with an
// optional YAML overlay.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server composition root needs.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// JWTSecret signs session tokens.
	JWTSecret string `yaml:"jwt_secret"`
	// TokenTTL bounds session token lifetime. Set via FIXIFY_TOKEN_TTL.
	TokenTTL time.Duration `yaml:"-"`
	// DatabaseURL is the Postgres connection string. Empty selects the
	// in-memory store.
	DatabaseURL string `yaml:"database_url"`
	// Seed controls whether empty slots are populated with starter data.
	Seed bool `yaml:"seed"`
}

// Load builds a Config from environment variables, then overlays the YAML
// file at path if one is given.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("FIXIFY_ADDR", ":8080"),
		JWTSecret:   getEnv("FIXIFY_JWT_SECRET", "fixify-dev-secret"),
		TokenTTL:    24 * time.Hour,
		DatabaseURL: os.Getenv("FIXIFY_DATABASE_URL"),
		Seed:        os.Getenv("FIXIFY_SEED") != "false",
	}

	if ttl := os.Getenv("FIXIFY_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("config: parse FIXIFY_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
