package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// stateFlag is a pflag.Value restricted to the known subject states.
type stateFlag struct {
	value domain.State
}

var _ pflag.Value = (*stateFlag)(nil)

func (f *stateFlag) String() string { return string(f.value) }
func (f *stateFlag) Type() string   { return "state" }

func (f *stateFlag) Set(s string) error {
	st, err := domain.ParseState(s)
	if err != nil {
		return err
	}
	f.value = st
	return nil
}

func stateNames() string {
	names := make([]string, 0, len(domain.States()))
	for _, s := range domain.States() {
		names = append(names, string(s))
	}
	return strings.Join(names, "|")
}

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "List subjects and record their state",
	}

	cmd.AddCommand(
		newSubjectListCmd(app),
		newSubjectSetCmd(app),
	)

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	var (
		year  int
		state stateFlag
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current career's subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			c := app.State.Career

			var subjects []domain.Subject
			for _, s := range c.Subjects {
				if year > 0 && s.Year != year {
					continue
				}
				if state.value != "" && s.State != state.value {
					continue
				}
				subjects = append(subjects, s)
			}

			filtered := &domain.Career{DisplayName: c.DisplayName, Subjects: subjects}
			out := cmd.OutOrStdout()
			if len(subjects) == 0 {
				fmt.Fprintln(out, formatter.Dim("No matching subjects."))
				return nil
			}
			for _, y := range filtered.Years() {
				fmt.Fprintln(out, formatter.YearTitle(filtered, y))
				fmt.Fprint(out, formatter.FormatYearTable(filtered, y))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Only this year")
	cmd.Flags().Var(&state, "state", "Only subjects in this state ("+stateNames()+")")

	return cmd
}

func newSubjectSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID STATE",
		Short: "Set a subject's state (" + stateNames() + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var st stateFlag
			if err := st.Set(args[1]); err != nil {
				return err
			}
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			if !app.State.HasCareer() {
				return fmt.Errorf("setting subject state: %w", service.ErrNoCareerSelected)
			}

			if err := app.Progress.SetSubjectState(cmd.Context(), app.State, args[0], st.value); err != nil {
				return err
			}

			for _, s := range app.State.Career.Subjects {
				if s.ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", formatter.Bold(s.Name), formatter.StatePill(s.State), formatter.SubjectPoints(s))
					break
				}
			}
			totals := domain.Compute(app.State.Career)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderProgress(totals.Percentage/100, 30))
			return nil
		},
	}
}
