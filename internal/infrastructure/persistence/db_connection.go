package persistence

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence/models"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// sqliteMemoryDSN names a private in-memory SQLite database
const sqliteMemoryDSN = ":memory:"

// slowQueryThreshold is the duration above which GORM reports a query as slow
const slowQueryThreshold = 200 * time.Millisecond

// gormLogWriter forwards GORM's own records to the service logger
type gormLogWriter struct {
	logger logger.Logger
}

func (w gormLogWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn(fmt.Sprintf(format, args...))
}

// newGormConfig sends failed and slow queries to dbLogger. Missing records are
// expected lookups, not failures, and are not reported.
func newGormConfig(dbLogger logger.Logger) *gorm.Config {
	if dbLogger == nil {
		return &gorm.Config{Logger: gormlogger.Discard}
	}

	return &gorm.Config{
		Logger: gormlogger.New(gormLogWriter{logger: dbLogger}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// NewDBConnection opens the account store described by settings. GORM's
// query diagnostics go to dbLogger; a nil dbLogger discards them.
func NewDBConnection(settings config.DatabaseSettings, dbLogger logger.Logger) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	gormConfig := newGormConfig(dbLogger)

	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings, gormConfig)
	case config.SqliteDbType:
		return connectSQLite(settings, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// Migrate creates or upgrades the schema of every persisted model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// connectPostgres connects with settings.DSN. When settings.DBName is set the
// database is created if missing and the returned handle points at it.
func connectPostgres(settings config.DatabaseSettings, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.DBName == "" {
		return db, nil
	}

	if err := ensurePostgresDatabase(db, settings.DBName); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	if err := CloseDB(db); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn, err := withDatabaseName(settings.DSN, settings.DBName)
	if err != nil {
		return nil, err
	}
	db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.DBName, err)
	}

	return db, nil
}

// withDatabaseName points a PostgreSQL DSN at dbName. Both the URL form
// (postgres://user@host/db) and the key=value form are understood.
func withDatabaseName(dsn, dbName string) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid PostgreSQL URL: %w", err)
		}
		u.Path = "/" + dbName
		u.RawPath = ""
		return u.String(), nil
	}

	return fmt.Sprintf("%s dbname=%s", dsn, dbName), nil
}

func ensurePostgresDatabase(db *gorm.DB, dbName string) error {
	var count int64
	if err := db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", dbName).Scan(&count).Error; err != nil {
		return fmt.Errorf("failed to look up database '%s': %w", dbName, err)
	}
	if count > 0 {
		return nil
	}

	if err := db.Exec("CREATE DATABASE ?", clause.Table{Name: dbName}).Error; err != nil {
		return fmt.Errorf("failed to create database '%s': %w", dbName, err)
	}
	return nil
}

func connectSQLite(settings config.DatabaseSettings, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(settings.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// every pooled connection would otherwise see its own empty database
	if settings.DSN == sqliteMemoryDSN {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database. Integration tests use it to clean up.
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), newGormConfig(nil))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	if err := db.Exec("DROP DATABASE IF EXISTS ?", clause.Table{Name: dbName}).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}
