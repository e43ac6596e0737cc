package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Storage string

const (
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Bot      Bot
	Alerts   Alerts
	Voting   Voting
	Catalog  Catalog
}

type App struct {
	Name      string  `env:"APP_NAME" envDefault:"tradevalues"`
	Version   string  `env:"APP_VERSION" envDefault:"dev"`
	Env       string  `env:"APP_ENV" envDefault:"local"`
	LogLevel  string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string  `env:"LOG_FORMAT" envDefault:"text"`
	Storage   Storage `env:"STORAGE" envDefault:"postgres"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD" json:"-"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Bot configures the Telegram notifier. Alerts are only logged when Token is
// empty.
type Bot struct {
	Token   string        `env:"BOT_TOKEN" json:"-"`
	ChatID  int64         `env:"BOT_CHAT_ID"`
	Timeout time.Duration `env:"BOT_TIMEOUT" envDefault:"10s"`
	// Commands enables long polling for the lookup commands.
	Commands bool  `env:"BOT_COMMANDS" envDefault:"false"`
	AdminID  int64 `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

type Alerts struct {
	CheckInterval time.Duration `env:"ALERT_CHECK_INTERVAL" envDefault:"30s"`
	Concurrency   int           `env:"ALERT_WORKER_CONCURRENCY" envDefault:"2"`
}

type Voting struct {
	MaxAttempts int           `env:"VOTE_MAX_ATTEMPTS" envDefault:"5"`
	Backoff     time.Duration `env:"VOTE_RETRY_BACKOFF" envDefault:"10ms"`
}

type Catalog struct {
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1m"`
	// File is imported on startup with memory storage.
	File string `env:"CATALOG_FILE" envDefault:"configs/catalog.yaml"`
	// Watch re-imports File on change. Memory storage only.
	Watch      bool          `env:"CATALOG_WATCH" envDefault:"false"`
	WatchDelay time.Duration `env:"CATALOG_WATCH_DELAY" envDefault:"500ms"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.App.Storage {
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("config: PG_DSN is required for %s storage", c.App.Storage)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE %q", c.App.Storage)
	}

	if c.Bot.Enabled() && c.Bot.ChatID == 0 {
		return fmt.Errorf("config: BOT_CHAT_ID is required with BOT_TOKEN")
	}

	if c.Alerts.CheckInterval <= 0 {
		return fmt.Errorf("config: ALERT_CHECK_INTERVAL must be positive")
	}

	return nil
}
