package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:          ":8080",
		DBPath:        "test.db",
		LogLevel:      "INFO",
		StoreName:     "studybuddy-game-store",
		StartingCoins: 200,
		WorkerCount:   2,
		QueueSize:     32,
		Coach: config.CoachConfig{
			BaseURL: "https://api.groq.com/openai/v1",
			Timeout: 20 * time.Second,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(c *config.Config)
		expectedError string
	}{
		{"empty addr", func(c *config.Config) { c.Addr = "" }, "ADDR cannot be empty"},
		{"empty db path", func(c *config.Config) { c.DBPath = "" }, "DB_PATH cannot be empty"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "LOUD" }, "LOG_LEVEL"},
		{"empty store name", func(c *config.Config) { c.StoreName = "" }, "STORE_NAME"},
		{"negative coins", func(c *config.Config) { c.StartingCoins = -1 }, "STARTING_COINS"},
		{"zero workers", func(c *config.Config) { c.WorkerCount = 0 }, "WORKER_COUNT"},
		{"zero queue", func(c *config.Config) { c.QueueSize = 0 }, "QUEUE_SIZE"},
		{"zero coach timeout", func(c *config.Config) { c.Coach.Timeout = 0 }, "COACH_TIMEOUT"},
		{"key without url", func(c *config.Config) {
			c.Coach.APIKey = "gsk_test"
			c.Coach.BaseURL = ""
		}, "COACH_BASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.StartingCoins)
	assert.Equal(t, "studybuddy-game-store", cfg.StoreName)
	assert.Equal(t, 20*time.Second, cfg.Coach.Timeout)
	assert.True(t, cfg.DailyReset)
	assert.False(t, cfg.Coach.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("STARTING_COINS", "50")
	t.Setenv("COACH_TIMEOUT", "5s")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("DAILY_RESET", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 50, cfg.StartingCoins)
	assert.Equal(t, 5*time.Second, cfg.Coach.Timeout)
	assert.False(t, cfg.DailyReset)
	assert.True(t, cfg.Coach.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "many")

	_, err := config.Load()
	assert.Error(t, err)
}
