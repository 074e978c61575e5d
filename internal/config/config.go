package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DBPath                string `validate:"required"`
	LogLevel              string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Environment           string `validate:"required,oneof=development staging production"`
	Timezone              string `validate:"required"`
	ReminderCronSpec      string `validate:"required"`
	ReminderLookAheadDays int    `validate:"gte=0,lte=31"`
}

// Load reads configuration from environment variables and a .env file, if
// one is present. Existing env variables are never overridden by the file.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		DBPath:           getEnv("DB_PATH", filepath.Join("data", "lunara.db")),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:      strings.ToLower(getEnv("ENVIRONMENT", "development")),
		Timezone:         getEnv("TZ", "UTC"),
		ReminderCronSpec: getEnv("REMINDER_CRON_SPEC", "0 9 * * *"),
	}

	lookAheadRaw := getEnv("REMINDER_LOOK_AHEAD_DAYS", "2")
	lookAhead, err := strconv.Atoi(lookAheadRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_LOOK_AHEAD_DAYS %q: %w", lookAheadRaw, err)
	}
	cfg.ReminderLookAheadDays = lookAhead

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
