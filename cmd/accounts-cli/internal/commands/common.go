package commands

import (
	"fmt"
	"os"

	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"

	defaultConfigPath = "configs/rest-app.yaml"
)

// AddGlobalFlags registers the flags every sub-command understands
func AddGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(configFlag, "", "Path to the YAML config file (default $CONFIG_PATH or "+defaultConfigPath+")")
	rootCmd.PersistentFlags().String(logLevelFlag, config.LogLevelError, "Log level of the CLI (debug, info, warning, error, critical)")
}

// loadConfig resolves the config path from the --config flag, then CONFIG_PATH
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// setupLogger initializes the shared logger with the CLI's own level so
// log records do not drown the JSON output.
func setupLogger(cmd *cobra.Command, cfg *config.RestConfig) (logger.Logger, error) {
	settings := cfg.Logger
	if level, err := cmd.Flags().GetString(logLevelFlag); err == nil && level != "" {
		settings.LogLevel = level
	}

	if err := logger.InitLogger(&settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase loads the config, sets up the logger and connects to the configured database
func openDatabase(cmd *cobra.Command) (*gorm.DB, logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	loggerInstance, err := setupLogger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database, loggerInstance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return db, loggerInstance, nil
}

func closeDatabase(db *gorm.DB, log logger.Logger) {
	if err := persistence.CloseDB(db); err != nil {
		log.Error("failed to close database ", err)
	}
}
