package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/fluxo/internal/cli"
	"github.com/alexanderramin/fluxo/internal/config"
	"github.com/alexanderramin/fluxo/internal/craa"
	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/db"
	"github.com/alexanderramin/fluxo/internal/logging"
	"github.com/alexanderramin/fluxo/internal/progress"
	"github.com/alexanderramin/fluxo/internal/repository"
	"github.com/alexanderramin/fluxo/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{Config: cfg, Logger: logger}

	// Services are wired once the --db and --dataset flags are known.
	app.Bootstrap = func(cfg config.Config) error {
		graph, err := curriculum.Load(cfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("loading curriculum: %w", err)
		}

		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		// Wire repositories
		kv := repository.NewSQLiteKVRepo(database)

		// Wire unit of work for transactional operations
		uow := db.NewSQLiteUnitOfWork(database)

		ctx := context.Background()
		store := progress.NewStore(kv, logger)
		store.Load(ctx)

		observer := service.NewLogUseCaseObserver(logger)
		app.Flowchart = service.NewFlowchartService(graph, store, logger, observer)
		app.CRAA = service.NewCRAAService(ctx, craa.NewStore(kv, uow, logger), observer)

		logger.Debug("services ready",
			zap.String("db", cfg.DBPath),
			zap.Int("disciplines", graph.Len()),
			zap.Int("unresolved_refs", len(graph.UnresolvedReferences())))
		return nil
	}

	// Detect interactive terminal for the browser and confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
