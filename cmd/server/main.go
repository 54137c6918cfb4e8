// Package main is the entry point for the Star Wars API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"starwars-server/internal/shared/config"
	"starwars-server/internal/shared/logger"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starwars-server",
		Short: "Star Wars catalog API",
		Long: `starwars-server serves the Star Wars planets and people catalog,
user registration and login, and per-user favorites over HTTP.

Running it without a subcommand starts the server.`,
		PersistentPreRunE: setup,
		RunE:              runServe,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddCommand(newServeCommand(), newMigrateCommand())

	return rootCmd
}

// setup loads configuration and installs the default logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.Init()
	return nil
}
