package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"preset-tracker/internal/constants"
)

type Config struct {
	DBPath      string
	ServerPort  string
	LogLevel    string
	SummaryTTL  time.Duration
	ItemDataURL string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:      getEnv("DB_PATH", "presets.db"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SummaryTTL:  constants.SummaryTTLDefault,
		ItemDataURL: getEnv("ITEM_DATA_URL", ""),
	}

	if raw := os.Getenv("SUMMARY_TTL_MINUTES"); raw != "" {
		d, err := time.ParseDuration(raw + "m")
		if err != nil {
			return nil, fmt.Errorf("invalid SUMMARY_TTL_MINUTES %q: %w", raw, err)
		}
		cfg.SummaryTTL = d
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("summary_ttl", cfg.SummaryTTL).
		Bool("item_data_enabled", cfg.ItemDataURL != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
