package commands

import (
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or upgrades the database schema
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	db, log, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer closeDatabase(db, log)

	if err := persistence.Migrate(db); err != nil {
		log.Error(err)
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the schema migration command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE:  MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
