// Package config loads bot configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DiscordToken string `validate:"required"`
	DiscordAppID string `validate:"required"`
	GuildID      string `validate:"required"`
	OwnerUserID  string

	// Loot channels scanned when (re)building the ownership ledgers.
	MonolithLootChannels []string `validate:"min=1"`
	StalkerLootChannels  []string `validate:"min=1"`

	// CacheDir holds ledger snapshot files and the snapshot index.
	CacheDir string `validate:"required"`

	// DefaultTimezone is the IANA zone applied to user-supplied datetimes
	// when the command omits one.
	DefaultTimezone string `validate:"required"`

	MetricsPort string
	LogLevel    string
	LogFormat   string
	Environment string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:         os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:         os.Getenv("DISCORD_APP_ID"),
		GuildID:              os.Getenv("GUILD_ID"),
		OwnerUserID:          os.Getenv("OWNER_USER_ID"),
		MonolithLootChannels: splitList(getEnv("MONOLITH_LOOT_CHANNELS", "")),
		StalkerLootChannels:  splitList(getEnv("STALKER_LOOT_CHANNELS", "")),
		CacheDir:             getEnv("LOOT_CACHE_DIR", "."),
		DefaultTimezone:      getEnv("DEFAULT_TIMEZONE", "Europe/Kiev"),
		MetricsPort:          getEnv("METRICS_PORT", "8082"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		Environment:          getEnv("ENVIRONMENT", "dev"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated env value into trimmed non-empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
