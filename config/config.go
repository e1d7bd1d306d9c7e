// Package config loads the runtime configuration from the environment
// (optionally through a .env file) and owns the database connection setup.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file into the process env, if present.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	seed "Ludex/constants/seed"
)

// Config is the root configuration object. Keys are flat on purpose so that
// LUDEX_DATABASE_PATH maps directly to "database_path" without delimiter
// gymnastics.
type Config struct {
	DatabasePath string  `koanf:"database_path" validate:"required"`
	VerboseSQL   bool    `koanf:"verbose_sql"`
	CSVPath      string  `koanf:"csv_path"`
	LogLevel     string  `koanf:"log_level"`
	SeedUsers    int     `koanf:"seed_users" validate:"min=0"`
	MinGames     int     `koanf:"min_games" validate:"min=0"`
	MaxGames     int     `koanf:"max_games" validate:"min=0"`
	ConsentRate  float64 `koanf:"consent_rate" validate:"min=0,max=1"`
}

// Default returns a config pre-filled with the seeding defaults, before any
// environment override.
func Default() *Config {
	return &Config{
		DatabasePath: "data/db_games.db",
		CSVPath:      "data/vgsales.csv",
		LogLevel:     "info",
		SeedUsers:    seed.DefaultUserCount,
		MinGames:     seed.DefaultMinGamesPerUser,
		MaxGames:     seed.DefaultMaxGamesPerUser,
		ConsentRate:  seed.DefaultConsentRate,
	}
}

// Load reads LUDEX_-prefixed environment variables over the defaults and
// validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("LUDEX_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LUDEX_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if cfg.MaxGames < cfg.MinGames {
		return nil, fmt.Errorf("validating config: max_games (%d) below min_games (%d)", cfg.MaxGames, cfg.MinGames)
	}

	return cfg, nil
}
