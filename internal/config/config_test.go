package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/tester", ".leettomato", "leettomato.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join("/home/tester", ".leettomato", "sounds"), cfg.SoundsDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60000, cfg.QuizTimeoutMs)
	assert.False(t, cfg.QuizLogCalls)
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.Quiz().Enabled())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"LEETTOMATO_DB":              "/tmp/lt.db",
		"LEETTOMATO_CATALOG":         "/tmp/problems.json",
		"LEETTOMATO_SOUNDS_DIR":      "/tmp/sounds",
		"LEETTOMATO_LOG_LEVEL":       "debug",
		"LEETTOMATO_LOG_FILE":        "/tmp/lt.log",
		"LEETTOMATO_QUIZ_URL":        "http://quiz.local",
		"LEETTOMATO_QUIZ_PASSWORD":   "pw",
		"LEETTOMATO_QUIZ_TIMEOUT_MS": "1500",
		"LEETTOMATO_QUIZ_LOG_CALLS":  "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/lt.db", cfg.DBPath)
	assert.Equal(t, "/tmp/problems.json", cfg.CatalogPath)
	assert.Equal(t, "/tmp/sounds", cfg.SoundsDir)
	assert.Equal(t, "/tmp/lt.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	q := cfg.Quiz()
	assert.True(t, q.Enabled())
	assert.Equal(t, "http://quiz.local", q.BaseURL)
	assert.Equal(t, "pw", q.Password)
	assert.Equal(t, 1500, q.TimeoutMs)
	assert.True(t, q.LogCalls)
}

func TestParse_InvalidNumber(t *testing.T) {
	_, err := Parse(map[string]string{"LEETTOMATO_QUIZ_TIMEOUT_MS": "soon"})
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Config{LogLevel: in}.Level(), in)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEETTOMATO_QUIZ_URL=http://from-dotenv\nLEETTOMATO_DB=/tmp/dotenv.db\n"), 0o644))

	t.Setenv("LEETTOMATO_QUIZ_URL", "")
	os.Unsetenv("LEETTOMATO_QUIZ_URL")
	t.Setenv("LEETTOMATO_DB", "/tmp/from-env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv", cfg.QuizURL)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath, "process environment wins over .env")
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	t.Setenv("LEETTOMATO_DB", "/tmp/x.db")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}
