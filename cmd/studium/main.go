package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acrane/studium/internal/cli"
	"github.com/acrane/studium/internal/config"
	"github.com/acrane/studium/internal/db"
	"github.com/acrane/studium/internal/repository"
	"github.com/acrane/studium/internal/service"
	"github.com/acrane/studium/internal/timer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(home)
	if err != nil {
		return err
	}

	// DB path precedence: env var, config file, default under the home dir.
	dbPath := os.Getenv("STUDIUM_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		dbPath = filepath.Join(home, "studium.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Mutation logging is opt-in via STUDIUM_LOG=1.
	var opts []service.AggregatorOption
	if os.Getenv("STUDIUM_LOG") != "" {
		opts = append(opts, service.WithObserver(service.NewLogMutationObserver(os.Stderr)))
	}

	aggregator := service.NewAggregator(
		repository.NewSQLiteSubjectRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteGoalRepo(database),
		db.NewSQLiteUnitOfWork(database),
		opts...,
	)
	if err := aggregator.LoadAll(context.Background()); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	app := &cli.App{
		Aggregator: aggregator,
		Timer:      timer.NewEngine(aggregator, timer.WithMinCommit(cfg.Timer.MinCommitSec)),
		Config:     cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
