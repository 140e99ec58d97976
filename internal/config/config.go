package config

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"ctchen222/tictactoe/internal/validator"

	"github.com/spf13/viper"
)

// envPrefix namespaces every setting, e.g. TICTACTOE_LOG_LEVEL.
const envPrefix = "TICTACTOE"

// Config holds the settings read from the environment.
type Config struct {
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"loglevel"`
	OtelEndpoint string `mapstructure:"OTEL_ENDPOINT" validate:"omitempty,hostname_port"`
	Seed         uint64 `mapstructure:"SEED"`
	Color        bool   `mapstructure:"COLOR"`
	ClearScreen  bool   `mapstructure:"CLEAR_SCREEN"`
}

// Load reads the configuration from TICTACTOE_* environment variables,
// falling back to defaults, and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("OTEL_ENDPOINT", "")
	v.SetDefault("SEED", 0)
	v.SetDefault("COLOR", true)
	v.SetDefault("CLEAR_SCREEN", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Rand returns a source seeded with Seed, or nil when Seed is 0 so callers
// fall back to the global source.
func (c *Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}
