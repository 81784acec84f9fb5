package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show career progress and the selected year's subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			state := app.State

			selected := state.SelectedYear
			if cmd.Flags().Changed("year") {
				selected = strconv.Itoa(year)
			}
			shown := state.Career.ResolveYear(selected)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(state, shown))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Show this year's subjects instead of the selected one")

	return cmd
}
