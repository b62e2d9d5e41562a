// cmd/accounts-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Ritsch1/devops-capstone-project/internal/api/rest/v1"
	"github.com/Ritsch1/devops-capstone-project/internal/app"
	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultConfigPath = "configs/rest-app.yaml"
	shutdownTimeout   = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	log.Info("Starting accounts REST API")

	db, accountService, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, accountService, log)
}

// initializeDependencies opens the database, migrates the schema and builds the account service
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*gorm.DB, accounts.AccountService, error) {
	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, nil, err
	}
	log.Info("Database migrations completed successfully")

	accountRepo, err := persistence.NewGormAccountRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create account repository: %w", err)
	}

	accountService, err := app.NewAccountService(accountRepo, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create account service: %w", err)
	}

	return db, accountService, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, accountService accounts.AccountService, log logger.Logger) error {
	if cfg.Logger.LogLevel != config.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := v1.NewRouter(accountService, log, v1.RouterOptions{ForceHTTPS: cfg.ForceHTTPS})

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on ", cfg.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
