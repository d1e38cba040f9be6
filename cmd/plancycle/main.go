package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhlim/plancycle/internal/cli"
	"github.com/dhlim/plancycle/internal/db"
	"github.com/dhlim/plancycle/internal/repository"
	"github.com/dhlim/plancycle/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.plancycle/plancycle.db
	dbPath := os.Getenv("PLANCYCLE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".plancycle", "plancycle.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	groupRepo := repository.NewSQLitePlanGroupRepo(database)
	planRepo := repository.NewSQLiteScheduledPlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Schedule: service.NewScheduleService(groupRepo, planRepo, uow),
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
