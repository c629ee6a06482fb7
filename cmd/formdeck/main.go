package main

import (
	"fmt"
	"os"

	"github.com/formdeck/formdeck/internal/cli"
	"github.com/formdeck/formdeck/internal/db"
	"github.com/formdeck/formdeck/internal/repository"
	"github.com/formdeck/formdeck/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The store is in-memory by design: one session, one database,
	// nothing survives exit.
	database, err := db.OpenMemory()
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}

	store := service.NewTemplateStore(repository.NewSQLiteTemplateRepo(database), database)
	defer store.Close()

	app := &cli.App{
		Store:    store,
		DebugLog: os.Getenv("FORMDECK_DEBUG"),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
