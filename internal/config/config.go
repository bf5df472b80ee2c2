package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends understood by Load
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Storage   StorageConfig
	Rules     RulesConfig
	SRD       SRDConfig
	Discord   DiscordConfig
	Telemetry TelemetryConfig
}

// StorageConfig selects where actor, macro and roll table documents live
type StorageConfig struct {
	Backend    string `env:"STORAGE_BACKEND" envDefault:"memory"`
	RedisURL   string `env:"REDIS_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"bags.db"`
}

// RulesConfig holds the initial rule module selection. Values are written
// to the settings store at bootstrap only when no selection exists yet.
type RulesConfig struct {
	AbilityScores     string `env:"RULES_ABILITY_SCORES"`
	Combat            string `env:"RULES_COMBAT"`
	Initiative        string `env:"RULES_INITIATIVE"`
	Movement          string `env:"RULES_MOVEMENT"`
	Encumbrance       string `env:"RULES_ENCUMBRANCE"`
	CharacterActions  string `env:"RULES_CHARACTER_ACTIONS"`
	SavingThrowSystem string `env:"RULES_SAVING_THROW_SYSTEM"`
}

// SRDConfig holds monster import API configuration
type SRDConfig struct {
	Timeout time.Duration `env:"SRD_TIMEOUT" envDefault:"30s"`
}

// DiscordConfig holds the optional chat sink configuration
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// TelemetryConfig holds tracing configuration
type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_ENDPOINT"`
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"bags-engine"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if cfg.Storage.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for the redis storage backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}

	if cfg.Discord.Token != "" && cfg.Discord.ChannelID == "" {
		return nil, fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}

// Selections returns the configured rule module ids keyed by category name.
// Empty values are omitted.
func (r RulesConfig) Selections() map[string]string {
	out := make(map[string]string)
	add := func(category, id string) {
		if id != "" {
			out[category] = id
		}
	}
	add("ability-scores", r.AbilityScores)
	add("saving-throws", r.SavingThrowSystem)
	add("combat", r.Combat)
	add("initiative", r.Initiative)
	add("movement", r.Movement)
	add("encumbrance", r.Encumbrance)
	add("character-actions", r.CharacterActions)
	return out
}
