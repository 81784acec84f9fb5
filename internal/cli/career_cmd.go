package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/spf13/cobra"
)

func newCareerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "career",
		Short: "Select, inspect and author careers",
	}

	cmd.AddCommand(
		newCareerListCmd(app),
		newCareerSelectCmd(app),
		newCareerShowCmd(app),
		newCareerCreateCmd(app),
		newCareerEditCmd(app),
		newCareerDuplicateCmd(app),
		newCareerDeleteCmd(app),
		newCareerLintCmd(app),
	)

	return cmd
}

func newCareerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom careers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCareerList(listing, app.State.CareerID))
			return nil
		},
	}
}

func newCareerSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select ID",
		Short: "Make a career the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.state()
			if err := app.Loader.Load(cmd.Context(), state, args[0]); err != nil {
				return fmt.Errorf("selecting career: %w", err)
			}
			out := cmd.OutOrStdout()
			name := domain.CoalesceStr(state.Career.DisplayName, state.CareerID)
			fmt.Fprintf(out, "Selected %s %s\n", formatter.Bold(name), formatter.Dim("("+state.Status+")"))
			if state.Status == service.StatusDefaults {
				fmt.Fprintln(out, formatter.StyleYellow.Render("Could not load the career definition; showing sample subjects."))
			}
			return nil
		},
	}
}

func newCareerShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a career's subjects without selecting it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var careerID string
			if len(args) == 1 {
				careerID = args[0]
			} else {
				if err := app.loadState(ctx); err != nil {
					return err
				}
				if !app.State.HasCareer() {
					return service.ErrNoCareerSelected
				}
				careerID = app.State.CareerID
			}

			career, err := app.Loader.Peek(ctx, careerID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCareerDefinition(careerID, career))
			return nil
		},
	}
}

// draftFlags are shared by create and edit.
type draftFlags struct {
	name     string
	subjects []string
	from     string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Career name")
	cmd.Flags().StringArrayVar(&f.subjects, "subject", nil, `Subject as "year:hours:name" (repeatable)`)
	cmd.Flags().StringVar(&f.from, "from", "", "Read subjects from a career definition file")
	cmd.MarkFlagsMutuallyExclusive("subject", "from")
}

func (f *draftFlags) empty() bool {
	return f.name == "" && len(f.subjects) == 0 && f.from == ""
}

// apply overlays the flags onto base and returns the resulting draft.
func (f *draftFlags) apply(base *domain.CareerDraft) (*domain.CareerDraft, error) {
	draft := &domain.CareerDraft{Name: base.Name, Subjects: base.Subjects}
	switch {
	case f.from != "":
		decoded, err := importer.LoadFile(f.from)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.from, err)
		}
		draft.Subjects = decoded.Career.Subjects
		draft.Name = domain.CoalesceStr(decoded.Career.DisplayName, draft.Name)
	case len(f.subjects) > 0:
		subjects, err := parseSubjectSpecs(f.subjects)
		if err != nil {
			return nil, err
		}
		draft.Subjects = keepSubjectIdentity(base.Subjects, subjects)
	}
	if f.name != "" {
		draft.Name = f.name
	}
	return draft, nil
}

func newCareerCreateCmd(app *App) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom career and select it",
		Example: `  cumbre career create --name "Profesorado" --subject "1:64:Didáctica" --subject "2:96:Práctica"
  cumbre career create --from plan.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			draft := &domain.CareerDraft{}
			var err error
			if flags.empty() {
				if !app.interactive() {
					return errors.New("nothing to create: pass --name with --subject or --from")
				}
				draft.Subjects = []domain.Subject{{Year: editorDefaultYear, Hours: editorDefaultHours}}
				draft, err = runCareerEditor(ctx, draft)
			} else {
				draft, err = flags.apply(draft)
			}
			if err != nil {
				return err
			}

			created, err := app.Catalog.Create(ctx, app.state(), draft)
			if err != nil {
				return err
			}
			printCreated(cmd, created)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCareerEditCmd(app *App) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a custom career",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			careerID := args[0]
			if !domain.IsCustomKey(careerID) {
				return fmt.Errorf("career %q: %w", careerID, service.ErrNotCustom)
			}
			if err := app.loadState(ctx); err != nil {
				return err
			}

			current, err := app.Loader.Peek(ctx, careerID)
			if err != nil {
				return err
			}
			base := &domain.CareerDraft{Name: current.DisplayName, Subjects: current.Subjects}

			var draft *domain.CareerDraft
			if flags.empty() {
				if !app.interactive() {
					return errors.New("nothing to change: pass --name, --subject or --from")
				}
				draft, err = runCareerEditor(ctx, base)
			} else {
				draft, err = flags.apply(base)
			}
			if err != nil {
				return err
			}

			edited, err := app.Catalog.Edit(ctx, app.State, careerID, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", formatter.Bold(edited.Name), formatter.Dim(edited.Key()))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCareerDuplicateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "duplicate [ID]",
		Short: "Copy a career into a new custom career",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.loadState(ctx); err != nil {
				return err
			}
			careerID := app.State.CareerID
			if len(args) == 1 {
				careerID = args[0]
			}
			if careerID == "" {
				return service.ErrNoCareerSelected
			}

			draft, err := app.Catalog.Duplicate(ctx, app.State, careerID)
			if err != nil {
				return err
			}
			if name != "" {
				draft.Name = name
			} else if app.interactive() {
				if draft, err = runCareerEditor(ctx, draft); err != nil {
					return err
				}
			}

			created, err := app.Catalog.Create(ctx, app.State, draft)
			if err != nil {
				return err
			}
			printCreated(cmd, created)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the copy (default \"<name> (Copia)\")")
	return cmd
}

func newCareerDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a custom career and its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.loadState(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err := app.Catalog.Delete(ctx, app.State, args[0], app.confirmer(out, yes))
			if errors.Is(err, service.ErrDeleteDeclined) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newCareerLintCmd(_ *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE",
		Short: "Check a career definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			errs := importer.ValidateDefinition(raw)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLintResult(path, errs))
			if len(errs) > 0 {
				return fmt.Errorf("%s is not a valid career definition", path)
			}
			return nil
		},
	}
}

func printCreated(cmd *cobra.Command, created *domain.CustomCareer) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s %s\n\n", formatter.Bold(created.Name), formatter.Dim(created.Key()))
	fmt.Fprint(out, formatter.FormatDraft(&domain.CareerDraft{Name: created.Name, Subjects: created.Subjects}))
}
