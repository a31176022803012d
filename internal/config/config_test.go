package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("APP_PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("REMINDER_CRON_SCHEDULE", "")
	t.Setenv("REMINDER_HOUR", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, "0 18 * * *", cfg.Reminder.CronSchedule)
	assert.Equal(t, 18, cfg.Reminder.Hour)
}

func TestLoadMissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadInvalidReminderHour(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("REMINDER_HOUR", "25")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REMINDER_HOUR")
}

func TestLoadNonNumericReminderHourFallsBack(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("REMINDER_HOUR", "evening")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.Reminder.Hour)
}
