package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Reminder ReminderConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// GeminiConfig contains credentials and options for the Gemini API.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ReminderConfig holds settings for the end-of-day reminder sweep.
type ReminderConfig struct {
	CronSchedule string
	Hour         int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("GOOGLE_API_KEY"),
			Model:   getenvWithDefault("GEMINI_MODEL", "gemini-2.0-flash-exp"),
			BaseURL: getenvWithDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
		Reminder: ReminderConfig{
			CronSchedule: getenvWithDefault("REMINDER_CRON_SCHEDULE", "0 18 * * *"),
			Hour:         getenvIntWithDefault("REMINDER_HOUR", 18),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Gemini.APIKey == "" {
		return errors.New("GOOGLE_API_KEY must be provided")
	}
	if c.Gemini.Model == "" {
		return errors.New("GEMINI_MODEL must not be empty")
	}
	if c.Gemini.BaseURL == "" {
		return errors.New("GEMINI_BASE_URL must not be empty")
	}

	if c.Reminder.CronSchedule == "" {
		return errors.New("REMINDER_CRON_SCHEDULE must be provided")
	}
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 {
		return errors.New("REMINDER_HOUR must be between 0 and 23")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
