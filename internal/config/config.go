package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "FIXPACK_"

type DatabaseConfig struct {
	Driver string `toml:"driver" env:"DRIVER"`
	URL    string `toml:"url" env:"URL"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

type GitHubConfig struct {
	Token          string `toml:"token" env:"TOKEN"`
	AppID          int64  `toml:"app_id" env:"APP_ID"`
	PrivateKey     string `toml:"private_key" env:"PRIVATE_KEY"`
	PrivateKeyPath string `toml:"private_key_path" env:"PRIVATE_KEY_PATH"`
	InstallationID string `toml:"installation_id" env:"INSTALLATION_ID"`
	BaseURL        string `toml:"base_url" env:"BASE_URL"`
	WebhookSecret  string `toml:"webhook_secret" env:"WEBHOOK_SECRET"`
}

type ApplyConfig struct {
	Concurrency int           `toml:"concurrency" env:"CONCURRENCY"`
	MaxAttempts int           `toml:"max_attempts" env:"MAX_ATTEMPTS"`
	BackoffBase time.Duration `toml:"backoff_base" env:"BACKOFF_BASE"`
	BackoffMax  time.Duration `toml:"backoff_max" env:"BACKOFF_MAX"`
	CreditCost  int           `toml:"credit_cost" env:"CREDIT_COST"`
}

type MonitorConfig struct {
	Concurrency  int           `toml:"concurrency" env:"CONCURRENCY"`
	MaxAttempts  int           `toml:"max_attempts" env:"MAX_ATTEMPTS"`
	PollAttempts int           `toml:"poll_attempts" env:"POLL_ATTEMPTS"`
	PollInterval time.Duration `toml:"poll_interval" env:"POLL_INTERVAL"`
}

type QueueConfig struct {
	PollInterval       time.Duration `toml:"poll_interval" env:"QUEUE_POLL_INTERVAL"`
	Lease              time.Duration `toml:"lease" env:"QUEUE_LEASE"`
	CompletedRetention time.Duration `toml:"completed_retention" env:"COMPLETED_RETENTION"`
	FailedRetention    time.Duration `toml:"failed_retention" env:"FAILED_RETENTION"`
	ShutdownTimeout    time.Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

type Config struct {
	HTTPAddr     string `toml:"http_addr" env:"HTTP_ADDR"`
	RepairLabel  string `toml:"repair_label" env:"REPAIR_LABEL"`
	BranchPrefix string `toml:"branch_prefix" env:"BRANCH_PREFIX"`

	Database DatabaseConfig `toml:"database" envPrefix:"DATABASE_"`
	Log      LogConfig      `toml:"log" envPrefix:"LOG_"`
	GitHub   GitHubConfig   `toml:"github" envPrefix:"GITHUB_"`
	Apply    ApplyConfig    `toml:"apply" envPrefix:"APPLY_"`
	Monitor  MonitorConfig  `toml:"monitor" envPrefix:"MONITOR_"`
	Queue    QueueConfig    `toml:"queue"`
}

func Default() Config {
	return Config{
		HTTPAddr:     ":8080",
		RepairLabel:  "agent:repair",
		BranchPrefix: "cynthia/fix",
		Database: DatabaseConfig{
			Driver: "sqlite3",
			URL:    "data/fixpack.db",
		},
		Log: LogConfig{Level: "info", Format: "json"},
		Apply: ApplyConfig{
			Concurrency: 2,
			MaxAttempts: 3,
			BackoffBase: 2 * time.Second,
			BackoffMax:  time.Minute,
			CreditCost:  1,
		},
		Monitor: MonitorConfig{
			Concurrency:  3,
			MaxAttempts:  1,
			PollAttempts: 60,
			PollInterval: 20 * time.Second,
		},
		Queue: QueueConfig{
			PollInterval:       time.Second,
			Lease:              30 * time.Minute,
			CompletedRetention: time.Hour,
			FailedRetention:    7 * 24 * time.Hour,
			ShutdownTimeout:    30 * time.Second,
		},
	}
}

// Source says where Load looks besides the process environment. An empty File
// falls back to $FIXPACK_CONFIG; a missing DotEnv file is ignored.
type Source struct {
	File   string
	DotEnv string
}

// Load layers defaults, the TOML file, the .env file and the environment, each
// overriding the one before. Variables already set in the environment win over .env.
func Load(src Source) (*Config, error) {
	cfg := Default()

	environ := env.ToMap(os.Environ())
	if src.DotEnv != "" {
		dotenv, err := godotenv.Read(src.DotEnv)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", src.DotEnv, err)
		}
		for k, v := range dotenv {
			if _, set := environ[k]; !set {
				environ[k] = v
			}
		}
	}

	file := src.File
	if file == "" {
		file = environ[envPrefix+"CONFIG"]
	}
	if file != "" {
		if _, err := toml.DecodeFile(file, &cfg); err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "sqlite3", "pgx":
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be sqlite3 or pgx, got %q", c.Database.Driver))
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	if c.Apply.Concurrency < 1 || c.Monitor.Concurrency < 1 {
		errs = append(errs, errors.New("pool concurrency must be at least 1"))
	}
	if c.Apply.MaxAttempts < 1 || c.Monitor.MaxAttempts < 1 || c.Monitor.PollAttempts < 1 {
		errs = append(errs, errors.New("attempt budgets must be at least 1"))
	}
	if c.Apply.CreditCost < 0 {
		errs = append(errs, errors.New("APPLY_CREDIT_COST cannot be negative"))
	}
	if c.Monitor.PollInterval <= 0 || c.Queue.PollInterval <= 0 || c.Queue.Lease <= 0 {
		errs = append(errs, errors.New("poll intervals and lease must be positive"))
	}
	if c.GitHub.AppID != 0 && c.GitHub.PrivateKey == "" && c.GitHub.PrivateKeyPath == "" {
		errs = append(errs, errors.New("GITHUB_APP_ID requires GITHUB_PRIVATE_KEY or GITHUB_PRIVATE_KEY_PATH"))
	}
	if strings.TrimSpace(c.RepairLabel) == "" {
		errs = append(errs, errors.New("REPAIR_LABEL is required"))
	}

	return errors.Join(errs...)
}

// HasGitHubCredential reports whether any GitHub credential is configured.
func (c *Config) HasGitHubCredential() bool {
	return c.GitHub.Token != "" || c.GitHub.AppID != 0
}

func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
