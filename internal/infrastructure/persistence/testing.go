//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// PostgresImage is the image integration tests run PostgreSQL from
const PostgresImage = "postgres:16-alpine"

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	AccountRepo accounts.AccountRepository
}

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresAdminDSN  string
	postgresErr       error
)

// postgresDSN returns a DSN reaching the admin database of a PostgreSQL server.
// TEST_POSTGRES_DSN points the tests at an existing server; otherwise a container is started once per package.
func postgresDSN(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		return dsn
	}

	postgresOnce.Do(func() {
		postgresContainer, postgresAdminDSN, postgresErr = startPostgresContainer(context.Background())
	})
	require.NoError(t, postgresErr, "Failed to start PostgreSQL container")

	return postgresAdminDSN
}

func startPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        PostgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, "", fmt.Errorf("failed to resolve container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, "", fmt.Errorf("failed to resolve container port: %w", err)
	}

	dsn := fmt.Sprintf("user=postgres password=postgres host=%s port=%s sslmode=disable", host, port.Port())
	return container, dsn, nil
}

// TerminatePostgresContainer stops the shared PostgreSQL container if one was started
func TerminatePostgresContainer() {
	if postgresContainer == nil {
		return
	}
	if err := postgresContainer.Terminate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to terminate PostgreSQL container: %v\n", err)
	}
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		adminDSN := postgresDSN(t)
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    adminDSN,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			if err := DropDatabase(adminDSN+" dbname=postgres", uniqueDBName); err != nil {
				t.Logf("failed to drop database %s: %v", uniqueDBName, err)
			}
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	testLogger := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, testLogger)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close database: %v", err)
		}
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	accountRepo, err := NewGormAccountRepository(db, testLogger)
	require.NoError(t, err, "Failed to create account repository")

	return &TestContext{
		DB:          db,
		AccountRepo: accountRepo,
	}
}

// CreateTestAccount creates an account with plausible values that differ per call
func CreateTestAccount(t *testing.T, name string) *accounts.Account {
	t.Helper()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if name == "" {
		name = "Test User " + suffix
	}

	return &accounts.Account{
		Name:        name,
		Email:       fmt.Sprintf("user-%s@example.com", suffix),
		Address:     suffix + " Test Street, Testville",
		PhoneNumber: "+1 555 0100",
		DateJoined:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}
