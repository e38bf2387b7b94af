package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "dailytechq.sqlite3", cfg.DBDSN)
	assert.Equal(t, 9, cfg.ScheduleHour)
	assert.Equal(t, 0, cfg.ScheduleMinute)
	assert.Equal(t, "Asia/Jerusalem", cfg.Timezone)
	assert.Empty(t, cfg.WebhookURL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jerusalem", loc.String())
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidSchedule(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"hour too big", "SCHEDULE_HOUR", "24"},
		{"hour negative", "SCHEDULE_HOUR", "-1"},
		{"minute too big", "SCHEDULE_MIN", "60"},
		{"minute negative", "SCHEDULE_MIN", "-5"},
		{"bad timezone", "TZ_NAME", "Atlantis/Lost"},
		{"bad driver", "DB_DRIVER", "oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_DSN", "host=localhost user=bot dbname=techq sslmode=disable")
	t.Setenv("SCHEDULE_HOUR", "18")
	t.Setenv("SCHEDULE_MIN", "30")
	t.Setenv("TZ_NAME", "Europe/Berlin")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com/updates")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, 18, cfg.ScheduleHour)
	assert.Equal(t, 30, cfg.ScheduleMinute)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, "https://bot.example.com/updates", cfg.WebhookURL)
}
