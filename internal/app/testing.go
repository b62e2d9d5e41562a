//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService accounts.AccountService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	dbContext := persistence.SetupTestDB(t, dbType)

	accountService, err := NewAccountService(dbContext.AccountRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create account service")

	return &TestServices{
		AccountService: accountService,
		DBContext:      dbContext,
	}
}
