// Package config loads and validates the bot configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`

	// DBDriver selects the storage backend: "sqlite3" or "pgx" (Postgres).
	DBDriver string `env:"DB_DRIVER" env-default:"sqlite3"`
	DBDSN    string `env:"DB_DSN" env-default:"dailytechq.sqlite3"`

	Timezone       string `env:"TZ_NAME" env-default:"Asia/Jerusalem"`
	ScheduleHour   int    `env:"SCHEDULE_HOUR" env-default:"9"`
	ScheduleMinute int    `env:"SCHEDULE_MIN" env-default:"0"`

	QuestionsPath string `env:"QUESTIONS_PATH" env-default:"assets/questions.json"`
	MigrationsDir string `env:"MIGRATIONS_DIR" env-default:"migrations"`

	// If WebhookURL is set, updates arrive over HTTPS on ListenAddr
	// instead of long polling.
	WebhookURL string `env:"WEBHOOK_URL" env-default:""`
	ListenAddr string `env:"LISTEN_ADDR" env-default:"0.0.0.0:8443"`
}

// Load reads the environment and validates the settings. Any invalid value
// is a startup error.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if c.ScheduleHour < 0 || c.ScheduleHour > 23 {
		return fmt.Errorf("SCHEDULE_HOUR out of range [0,23]: %d", c.ScheduleHour)
	}
	if c.ScheduleMinute < 0 || c.ScheduleMinute > 59 {
		return fmt.Errorf("SCHEDULE_MIN out of range [0,59]: %d", c.ScheduleMinute)
	}
	if c.DBDriver != "sqlite3" && c.DBDriver != "pgx" {
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite3 or pgx)", c.DBDriver)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}

	return nil
}

// Location resolves the configured timezone. Only valid after a successful
// Load.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
