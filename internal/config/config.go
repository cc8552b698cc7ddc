package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment, optionally seeded
// from a .env file, and never mutated afterwards.
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	Prefix        string `env:"PREFIX" envDefault:"!"`
	SettingsPath  string `env:"SETTINGS_PATH" envDefault:"data/settings.json"`
	DashboardAddr string `env:"DASHBOARD_ADDR" envDefault:":3000"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
}

func Load() (*Config, error) {
	// Missing .env is fine; system environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
