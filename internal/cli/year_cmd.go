package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newYearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Choose the year tab shown by status and the dashboard",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "select N",
		Short: "Select a year tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year %q is not a number", args[0])
			}
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			if err := app.Progress.SelectYear(cmd.Context(), app.State, year); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			c := app.State.Career
			if c.ResolveYear(app.State.SelectedYear) != year {
				fmt.Fprintln(out, formatter.StyleYellow.Render(fmt.Sprintf("Año %d has no subjects in this career; the first year is shown instead.", year)))
				return nil
			}
			fmt.Fprintln(out, formatter.YearTitle(c, year))
			return nil
		},
	})

	return cmd
}
