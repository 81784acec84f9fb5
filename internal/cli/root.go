package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/cumbre/internal/config"
	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/logging"
	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands and the state they share.
type App struct {
	Loader   service.LoaderService
	Progress service.ProgressService
	Transfer service.TransferService
	Catalog  service.CatalogService

	// State is the in-memory tracker state for the running command.
	State *domain.AppState

	// Wire builds the services from the resolved config. It runs once,
	// before the first command, and only when services were not injected.
	// The returned func releases what Wire opened.
	Wire func(cfg *config.Config) (func() error, error)

	// IsInteractive reports whether prompts can use interactive forms.
	IsInteractive func() bool

	// In feeds line-based prompts when the terminal is not interactive.
	In io.Reader

	// Now is the clock used for snapshots.
	Now func() time.Time

	closer func() error
}

// Close releases resources acquired by Wire.
func (app *App) Close() error {
	if app.closer == nil {
		return nil
	}
	err := app.closer()
	app.closer = nil
	return err
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) input() io.Reader {
	if app.In != nil {
		return app.In
	}
	return os.Stdin
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

// loadState fills app.State from the stored selection.
func (app *App) loadState(ctx context.Context) error {
	if app.State == nil {
		app.State = domain.NewAppState()
	}
	if err := app.Loader.Load(ctx, app.State, ""); err != nil {
		return fmt.Errorf("loading career: %w", err)
	}
	return nil
}

func (app *App) state() *domain.AppState {
	if app.State == nil {
		app.State = domain.NewAppState()
	}
	return app.State
}

type rootFlags struct {
	configFile string
	dbPath     string
	logLevel   string
}

// setup resolves config, applies flag overrides and wires services.
func (app *App) setup(flags *rootFlags) error {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return err
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	logging.For("cli").WithField("db", cfg.DBPath).Debug("configuration resolved")

	if app.Wire == nil || app.Loader != nil {
		return nil
	}
	closer, err := app.Wire(cfg)
	if err != nil {
		return err
	}
	app.closer = closer
	return nil
}

// NewRootCmd creates the top-level "cumbre" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "cumbre",
		Short:         "Track your progress through a university career",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default ~/.cumbre.yaml)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "Path to the local store")
	root.PersistentFlags().StringVar(&flags.logLevel, "loglevel", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newStatusCmd(app),
		newDashboardCmd(app),
		newCareerCmd(app),
		newSubjectCmd(app),
		newYearCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newImageNameCmd(app),
	)

	return root
}
