package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS      CORSConfig
	Log       LogConfig
	Seed      SeedConfig
	Analytics AnalyticsConfig
	Sessions  SessionConfig
	Reports   ReportsConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig controls the synthetic incident rows generated at startup.
type SeedConfig struct {
	Count      int
	RandomSeed int64
}

// AnalyticsConfig tunes the recency window and breakdown sizing.
type AnalyticsConfig struct {
	WindowDays int
	TopN       int
}

// SessionConfig bounds the in-memory session table.
type SessionConfig struct {
	IdleTimeout time.Duration
	MaxSessions int
}

// ReportsConfig governs export behaviour.
type ReportsConfig struct {
	Enabled bool
	Title   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		Count:      v.GetInt("SEED_COUNT"),
		RandomSeed: v.GetInt64("SEED_RANDOM_SEED"),
	}

	cfg.Analytics = AnalyticsConfig{
		WindowDays: v.GetInt("ANALYTICS_WINDOW_DAYS"),
		TopN:       v.GetInt("ANALYTICS_TOP_N"),
	}

	cfg.Sessions = SessionConfig{
		IdleTimeout: parseDuration(v.GetString("SESSION_IDLE_TIMEOUT"), 8*time.Hour),
		MaxSessions: v.GetInt("SESSION_MAX"),
	}

	cfg.Reports = ReportsConfig{
		Enabled: v.GetBool("ENABLE_REPORTS"),
		Title:   v.GetString("REPORTS_TITLE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_COUNT", 100)
	v.SetDefault("SEED_RANDOM_SEED", 0)

	v.SetDefault("ANALYTICS_WINDOW_DAYS", 90)
	v.SetDefault("ANALYTICS_TOP_N", 5)

	v.SetDefault("SESSION_IDLE_TIMEOUT", "8h")
	v.SetDefault("SESSION_MAX", 1000)

	v.SetDefault("ENABLE_REPORTS", true)
	v.SetDefault("REPORTS_TITLE", "Behaviour Incident Report")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
