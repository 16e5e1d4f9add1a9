package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/subosito/gotenv"

	"github.com/naveenspark/agora/internal/logger"
)

const (
	// DefaultAPIURL is the forum service used when AGORA_API_URL is unset.
	DefaultAPIURL = "http://localhost:8000"

	// DefaultTimeout bounds a single API round trip.
	DefaultTimeout = 30 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	APIURL  string
	Token   string // optional pre-issued token; kept in memory only
	Timeout time.Duration
	Log     logger.Config
}

// Load reads an optional .env file and then the environment.
// Variables already present in the environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("AGORA_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := gotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load env file, using OS environment", "file", envFile, "error", err)
	}

	cfg := &Config{
		APIURL:  strings.TrimSpace(os.Getenv("AGORA_API_URL")),
		Token:   strings.TrimSpace(os.Getenv("AGORA_TOKEN")),
		Timeout: DefaultTimeout,
		Log: logger.Config{
			Level:  os.Getenv("LOG_LEVEL"),
			File:   os.Getenv("LOG_FILE"),
			Format: os.Getenv("LOG_FORMAT"),
		},
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if raw := strings.TrimSpace(os.Getenv("AGORA_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config.Load: parse AGORA_TIMEOUT %q: %w", raw, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("config.Load: AGORA_TIMEOUT must not be negative, got %s", d)
		}
		cfg.Timeout = d
	}
	if cfg.Log.File == "" {
		if dir, err := DataDir(); err == nil {
			cfg.Log.File = filepath.Join(dir, "agora.log")
		}
	}
	return cfg, nil
}

// DataDir returns ~/.agora.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".agora"), nil
}
