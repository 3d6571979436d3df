// Package main is the entry point for the fyyur-cli application.
// It initializes the root command and registers the database and seed
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/deividmarreiro/fyyur/cmd/fyyur-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "fyyur-cli",
		Short: "Booking service management CLI tool",
		Long: `fyyur-cli is a command-line tool for managing the booking service database.
Supports schema migration, dropping test databases, and seeding venues,
artists and shows from a YAML fixture file.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize db commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}
