package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/leettomato/internal/catalog"
	"github.com/alexanderramin/leettomato/internal/clipboard"
	"github.com/alexanderramin/leettomato/internal/history"
	"github.com/alexanderramin/leettomato/internal/quiz"
	"github.com/alexanderramin/leettomato/internal/session"
	"github.com/alexanderramin/leettomato/internal/settings"
	"github.com/alexanderramin/leettomato/internal/timer"
	"github.com/spf13/cobra"
)

// App holds everything the commands and the practice TUI use.
type App struct {
	Settings  *settings.Service
	History   *history.Service
	Catalog   *catalog.Catalog
	Quiz      quiz.Client
	Clipboard clipboard.Writer
	Cues      session.CuePlayer
	Logger    *slog.Logger

	// Clock and TickInterval drive the phase timers. Zero values use the
	// system clock and the default tick.
	Clock        timer.Clock
	TickInterval time.Duration

	// IsInteractive reports whether stdin/stdout is a terminal. The bare
	// root command starts the practice TUI only when it returns true.
	IsInteractive func() bool
}

// NewController builds a fresh session controller wired to the app's
// stores and cue player.
func (a *App) NewController() *session.Controller {
	var observer session.UseCaseObserver
	if a.Logger != nil {
		observer = session.NewLogUseCaseObserver(a.Logger)
	}
	return session.NewController(session.Config{
		History:      a.History,
		Settings:     a.Settings,
		Cues:         a.Cues,
		Clock:        a.Clock,
		TickInterval: a.TickInterval,
		Logger:       a.Logger,
		Observer:     observer,
	})
}

// NewRootCmd creates the top-level "leettomato" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "leettomato",
		Short:         "Timed coding-interview practice",
		Long:          "Pick a problem, time the design and coding phases against your targets,\ngrade yourself and keep a history you can export as TSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runPractice(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPracticeCmd(app),
		newSearchCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
		newQuizCmd(app),
	)

	return root
}
