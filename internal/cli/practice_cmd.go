package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPracticeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "practice",
		Aliases: []string{"p"},
		Short:   "Run a timed practice session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(cmd.Context(), app)
		},
	}
}

// runPractice owns the terminal until the user quits. The session
// controller's timers are stopped on the way out.
func runPractice(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctl := app.NewController()
	defer ctl.Close()

	p := tea.NewProgram(newAppModel(app, ctl), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}
	return nil
}
