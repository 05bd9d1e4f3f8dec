package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageSQL    = "sql"
)

// Config holds the server settings read from the environment
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"shift-board"`
	GinMode     string `env:"GIN_MODE"`

	Storage     string `env:"STORAGE" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	DataPath    string `env:"DATA_PATH" envDefault:"shift_board.db"`

	Seed     bool   `env:"SEED" envDefault:"true"`
	SeedFile string `env:"SEED_FILE"`

	AuthEnabled   bool   `env:"AUTH_ENABLED" envDefault:"false"`
	JWTSecret     string `env:"JWT_SECRET"`
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
}

// envPaths are tried in order; the first existing file is loaded
var envPaths = []string{".env", "../.env", "../../.env"}

// Load reads an optional .env file and parses the environment
func Load() (*Config, error) {
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}
	return Parse()
}

// Parse reads the environment into a Config and validates it
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQL:
	default:
		return fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StorageSQL, c.Storage)
	}
	if c.AuthEnabled && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
