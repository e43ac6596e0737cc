package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tradevalues/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("STORAGE", "memory")

	cfg, err := config.Load()
	rq.NoError(err)
	rq.Equal(config.StorageMemory, cfg.App.Storage)
	rq.Equal(30*time.Second, cfg.Alerts.CheckInterval)
	rq.Equal(5, cfg.Voting.MaxAttempts)
	rq.Equal(10*time.Millisecond, cfg.Voting.Backoff)
	rq.Equal(time.Minute, cfg.Catalog.CacheTTL)
	rq.Equal("configs/catalog.yaml", cfg.Catalog.File)
	rq.False(cfg.Catalog.Watch)
	rq.Equal(500*time.Millisecond, cfg.Catalog.WatchDelay)
	rq.False(cfg.Bot.Commands)
	rq.False(cfg.Redis.Enabled())
	rq.False(cfg.Bot.Enabled())
}

func TestLoadValidation(t *testing.T) {
	tcs := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "postgres without dsn",
			env:  map[string]string{"STORAGE": "postgres", "PG_DSN": ""},
		},
		{
			name: "unknown storage",
			env:  map[string]string{"STORAGE": "sqlite"},
		},
		{
			name: "bot without chat",
			env:  map[string]string{"STORAGE": "memory", "BOT_TOKEN": "123:abc"},
		},
		{
			name: "zero interval",
			env:  map[string]string{"STORAGE": "memory", "ALERT_CHECK_INTERVAL": "0s"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
