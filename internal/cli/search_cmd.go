package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY...",
		Short: "Look up catalog problems by name, number or URL",
		Example: `  leettomato search two sum
  leettomato search 42
  leettomato search https://leetcode.com/problems/trapping-rain-water/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := app.Catalog.Search(query)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSearchResults(query, results))
			return nil
		},
	}
}
