package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/cumbre/internal/cli"
	"github.com/alexanderramin/cumbre/internal/config"
	"github.com/alexanderramin/cumbre/internal/db"
	"github.com/alexanderramin/cumbre/internal/logging"
	"github.com/alexanderramin/cumbre/internal/repository"
	"github.com/alexanderramin/cumbre/internal/service"
	"github.com/alexanderramin/cumbre/internal/source"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{In: os.Stdin}

	// Detect interactive terminal for huh prompts and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Services are wired after flags and config are resolved.
	app.Wire = func(cfg *config.Config) (func() error, error) {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}

		// Wire repositories
		progressRepo := repository.NewSQLiteProgressRepo(database)
		selectionRepo := repository.NewSQLiteSelectionRepo(database)
		catalogRepo := repository.NewSQLiteCatalogRepo(database)

		// Wire unit of work for transactional catalog operations
		uow := db.NewSQLiteUnitOfWork(database)

		// Career sources: built-ins first, then the local directory, then URLs.
		sources := source.Chain{source.NewEmbedded()}
		if cfg.CareersDir != "" {
			sources = append(sources, source.NewDir(cfg.CareersDir))
		}
		sources = append(sources, source.NewHTTP(source.HTTPOptions{
			RetryMax: cfg.HTTPRetries,
			Timeout:  cfg.HTTPTimeout,
		}, logging.For("source")))

		observer := service.NewLogUseCaseObserver(logging.For("service"))

		app.Loader = service.NewLoaderService(progressRepo, selectionRepo, catalogRepo, sources, logging.For("loader"), observer)
		app.Progress = service.NewProgressService(progressRepo, selectionRepo)
		app.Transfer = service.NewTransferService(progressRepo, logging.For("transfer"), observer)
		app.Catalog = service.NewCatalogService(catalogRepo, sources, uow, observer)

		return database.Close, nil
	}
	defer app.Close()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
