// Package main is the entry point for the accounts-cli application.
// It registers the schema and account management sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Ritsch1/devops-capstone-project/cmd/accounts-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "accounts-cli",
		Short: "Account management CLI tool",
		Long: `accounts-cli manages customer accounts directly against the service database.
It reads the same configuration file as the REST API (--config, falling back to
the CONFIG_PATH environment variable) and honours the same DATABASE_* overrides.

Accounts are printed as JSON, one account per line.`,
		SilenceUsage: true,
	}
	commands.AddGlobalFlags(rootCmd)

	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitAccountCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize account commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
