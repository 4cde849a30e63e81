package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/clipboard"
	"github.com/alexanderramin/leettomato/internal/export"
	"github.com/alexanderramin/leettomato/internal/history"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h"},
		Short:   "List, remove, clear and export past sessions",
	}
	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryClearCmd(app),
		newHistoryExportCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recent sessions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := history.DisplayLimit
			if all {
				limit = -1
			}
			shown, hidden := app.History.Recent(limit)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(shown, len(shown)+hidden))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every session")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one session with its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.History.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistoryDetail(e))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a session (an id prefix is enough)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.History.Resolve(args[0])
			if err != nil {
				return err
			}
			if err := app.History.Delete(cmd.Context(), e.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s (%s)\n", e.ID, e.ProblemTitle)
			return nil
		},
	}
}

var errClearNotConfirmed = errors.New("refusing to clear history without --yes")

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := app.History.Len()
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "History is already empty.")
				return nil
			}
			if !yes {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return errClearNotConfirmed
				}
				err := huh.NewConfirm().
					Title(fmt.Sprintf("Delete all %d sessions?", n)).
					Affirmative("Clear all").
					Negative("Keep").
					Value(&yes).
					WithTheme(leettomatoHuhTheme()).
					Run()
				if err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.History.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d sessions.\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var header, copyOut bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print sessions as tab-separated rows for a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.History.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No sessions to export.")
				return nil
			}
			text := export.FormatEntries(entries, header)

			if copyOut {
				ok, err := clipboard.Copy(app.Clipboard, text)
				if ok {
					fmt.Fprintf(cmd.OutOrStdout(), "Copied %d rows to the clipboard.\n", len(entries))
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Clipboard unavailable (%v); printing instead.\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&header, "header", false, "Include the column header row")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy to the clipboard instead of printing")
	return cmd
}
