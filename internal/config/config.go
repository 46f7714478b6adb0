package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment Environment
	Log         Log

	API      API            `envPrefix:"CRUST_API_"`
	Approval ApprovalServer `envPrefix:"CRUST_APPROVAL_"`

	// StoragePath is where the persisted session (token + identity) lives.
	// Defaults to <user config dir>/crust/storage.db when empty.
	StoragePath string `env:"CRUST_STORAGE_PATH"`
}

// API points at the pizza-ordering backend.
type API struct {
	BaseURL        string `env:"BASE_URL" envDefault:"http://localhost:8084/api"`
	TimeoutSeconds int    `env:"TIMEOUT_SECONDS" envDefault:"30"`
}

// ApprovalServer is the local listener that hosts the payment
// collaborator's approval step during checkout.
type ApprovalServer struct {
	Host string `env:"HOST" envDefault:"127.0.0.1"`
	Port string `env:"PORT" envDefault:"4242"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env (if present) into the environment and parses the config.
func Load() (*Config, error) {
	// no .env is fine outside development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.StoragePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.StoragePath = filepath.Join(dir, "crust", "storage.db")
	}

	return cfg, nil
}
