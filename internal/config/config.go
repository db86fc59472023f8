package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	DBPath        string        `env:"DB_PATH" envDefault:"file:studybuddy.db"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"INFO"`
	StoreName     string        `env:"STORE_NAME" envDefault:"studybuddy-game-store"`
	StartingCoins int           `env:"STARTING_COINS" envDefault:"200"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"2"`
	QueueSize     int           `env:"QUEUE_SIZE" envDefault:"32"`
	DailyReset    bool          `env:"DAILY_RESET" envDefault:"true"`
	Coach         CoachConfig
}

type CoachConfig struct {
	APIKey    string        `env:"GROQ_API_KEY"`
	BaseURL   string        `env:"COACH_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model     string        `env:"COACH_MODEL" envDefault:"llama-3.3-70b-versatile"`
	FastModel string        `env:"COACH_FAST_MODEL" envDefault:"llama-3.1-8b-instant"`
	Timeout   time.Duration `env:"COACH_TIMEOUT" envDefault:"20s"`
}

// Enabled reports whether remote completions can be attempted.
func (c CoachConfig) Enabled() bool {
	return c.APIKey != ""
}

// Load reads a .env file, if any, then the environment.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel)
	}
	if c.StoreName == "" {
		return fmt.Errorf("STORE_NAME cannot be empty")
	}
	if c.StartingCoins < 0 {
		return fmt.Errorf("STARTING_COINS must be >= 0, got %d", c.StartingCoins)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be >= 1, got %d", c.WorkerCount)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("QUEUE_SIZE must be >= 1, got %d", c.QueueSize)
	}
	if c.Coach.Timeout <= 0 {
		return fmt.Errorf("COACH_TIMEOUT must be positive, got %s", c.Coach.Timeout)
	}
	if c.Coach.Enabled() && c.Coach.BaseURL == "" {
		return fmt.Errorf("COACH_BASE_URL cannot be empty when GROQ_API_KEY is set")
	}
	return nil
}
