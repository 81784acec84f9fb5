package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/cumbre/internal/cli/formatter"
	"github.com/alexanderramin/cumbre/internal/importer"
	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current career and progress to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			data, err := app.Transfer.Export(app.State)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d subjects to %s\n", len(app.State.Career.Subjects), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", importer.ExportFileName, `Output file ("-" for stdout)`)
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the current progress with an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = app.Transfer.Import(cmd.Context(), app.State, raw, app.confirmer(out, yes))
			if errors.Is(err, service.ErrImportDeclined) {
				fmt.Fprintln(out, "Import cancelled.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Imported %d subjects\n", len(app.State.Career.Subjects))
			if !app.State.HasCareer() {
				fmt.Fprintln(out, formatter.Dim("No career is selected, so the import was not saved."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite stored progress without asking")
	return cmd
}

func newImageNameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "image-name",
		Short: "Print the progress image file name and caption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.loadState(cmd.Context()); err != nil {
				return err
			}
			snap := app.Transfer.Snapshot(app.State, app.now())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, snap.FileName)
			fmt.Fprintln(out, snap.Overlay.CareerName)
			fmt.Fprintln(out, snap.Overlay.Percentage)
			fmt.Fprintln(out, snap.Overlay.Generated)
			return nil
		},
	}
}
