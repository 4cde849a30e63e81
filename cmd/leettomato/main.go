package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alexanderramin/leettomato/internal/catalog"
	"github.com/alexanderramin/leettomato/internal/cli"
	"github.com/alexanderramin/leettomato/internal/clipboard"
	"github.com/alexanderramin/leettomato/internal/config"
	"github.com/alexanderramin/leettomato/internal/db"
	"github.com/alexanderramin/leettomato/internal/history"
	"github.com/alexanderramin/leettomato/internal/quiz"
	"github.com/alexanderramin/leettomato/internal/repository"
	"github.com/alexanderramin/leettomato/internal/settings"
	"github.com/alexanderramin/leettomato/internal/sound"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Log lines on stderr would tear the alt-screen TUI, so interactive
	// runs without a log file log nowhere.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	} else if interactive() {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv := repository.NewSQLiteKVRepo(database)
	settingsSvc := settings.NewService(ctx, kv, logger)
	historySvc := history.NewService(ctx, kv, logger)

	problems, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	player := sound.NewPlayer(cfg.SoundsDir, settingsSvc.SoundEnabled, logger)
	defer player.Wait()

	app := &cli.App{
		Settings:      settingsSvc,
		History:       historySvc,
		Catalog:       problems,
		Clipboard:     clipboard.System{},
		Cues:          player,
		Logger:        logger,
		IsInteractive: interactive,
	}

	// The quiz service is optional; its commands report it as unconfigured
	// when no URL is set.
	if quizCfg := cfg.Quiz(); quizCfg.Enabled() {
		var observer quiz.Observer = quiz.NoopObserver{}
		if quizCfg.LogCalls {
			observer = quiz.NewLogObserver(logger)
		}
		app.Quiz = quiz.NewClient(quizCfg, observer)
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
