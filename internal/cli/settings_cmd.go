package cli

import (
	"fmt"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/settings"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change phase targets and sound",
	}
	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(app.Settings.Get()))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Long: `Change one setting. Keys: design, coding, sound (or their stored names).
Minute targets are clamped to 1-120.`,
		Example: `  leettomato settings set design 10
  leettomato settings set sound on`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := settings.ResolveKey(args[0])
			if err != nil {
				return err
			}
			value, err := settings.ParseValue(key, args[1])
			if err != nil {
				return err
			}
			next, err := app.Settings.Update(cmd.Context(), key, value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, formatter.Bold(settings.Value(next, key)))
			return nil
		},
	}
}
