// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/leettomato/internal/quiz"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DirName is the per-user data directory under $HOME.
const DirName = ".leettomato"

// Config is the process configuration. Empty paths are filled with
// defaults under ~/.leettomato by Load.
type Config struct {
	DBPath      string `env:"LEETTOMATO_DB"`
	CatalogPath string `env:"LEETTOMATO_CATALOG"`
	SoundsDir   string `env:"LEETTOMATO_SOUNDS_DIR"`
	LogLevel    string `env:"LEETTOMATO_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LEETTOMATO_LOG_FILE"`

	QuizURL       string `env:"LEETTOMATO_QUIZ_URL"`
	QuizPassword  string `env:"LEETTOMATO_QUIZ_PASSWORD"`
	QuizTimeoutMs int    `env:"LEETTOMATO_QUIZ_TIMEOUT_MS" envDefault:"60000"`
	QuizLogCalls  bool   `env:"LEETTOMATO_QUIZ_LOG_CALLS"`
}

// Load reads .env files (default ".env"; missing files are ignored), then
// parses the process environment. Variables already set win over .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return withDefaults(cfg)
}

// Parse builds a Config from an explicit variable map instead of the
// process environment.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return withDefaults(cfg)
}

func withDefaults(cfg Config) (Config, error) {
	if cfg.DBPath != "" && cfg.SoundsDir != "" {
		return cfg, nil
	}
	dir, err := DataDir()
	if err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "leettomato.db")
	}
	if cfg.SoundsDir == "" {
		cfg.SoundsDir = filepath.Join(dir, "sounds")
	}
	return cfg, nil
}

// DataDir returns ~/.leettomato.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Quiz returns the quiz client settings.
func (c Config) Quiz() quiz.Config {
	q := quiz.DefaultConfig()
	q.BaseURL = c.QuizURL
	q.Password = c.QuizPassword
	q.LogCalls = c.QuizLogCalls
	if c.QuizTimeoutMs > 0 {
		q.TimeoutMs = c.QuizTimeoutMs
	}
	return q
}

// Level maps LogLevel to a slog level; unknown values mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
