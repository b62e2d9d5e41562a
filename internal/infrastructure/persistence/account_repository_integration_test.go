//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence/models"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBTypes = []string{config.SqliteDbType, config.PostgresDbType}

func forEachDB(t *testing.T, fn func(t *testing.T, tc *TestContext)) {
	for _, dbType := range testDBTypes {
		t.Run(dbType, func(t *testing.T) {
			if dbType == config.PostgresDbType && testing.Short() {
				t.Skip("skipping PostgreSQL container test in short mode")
			}
			fn(t, SetupTestDB(t, dbType))
		})
	}
}

func TestAccountRepository_Create(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		account := CreateTestAccount(t, "")

		require.NoError(t, tc.AccountRepo.Create(context.Background(), account))
		assert.NotZero(t, account.ID)

		var stored models.AccountModel
		require.NoError(t, tc.DB.First(&stored, "id = ?", account.ID).Error)
		assert.Equal(t, account.Name, stored.Name)
		assert.Equal(t, account.Email, stored.Email)
	})
}

func TestAccountRepository_Create_AssignsIncreasingIDs(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		first := CreateTestAccount(t, "")
		second := CreateTestAccount(t, "")

		require.NoError(t, tc.AccountRepo.Create(context.Background(), first))
		require.NoError(t, tc.AccountRepo.Create(context.Background(), second))

		assert.Greater(t, second.ID, first.ID)
	})
}

func TestAccountRepository_Create_ValidationError(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		err := tc.AccountRepo.Create(context.Background(), &accounts.Account{Name: "not enough data"})
		require.Error(t, err)
		assert.ErrorIs(t, err, accounts.ErrDataValidation)
	})
}

func TestAccountRepository_GetByID(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		account := CreateTestAccount(t, "")
		require.NoError(t, tc.AccountRepo.Create(context.Background(), account))

		fetched, err := tc.AccountRepo.GetByID(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.ID, fetched.ID)
		assert.Equal(t, account.Address, fetched.Address)
		assert.Equal(t, account.PhoneNumber, fetched.PhoneNumber)
		assert.Equal(t, "2024-01-15", fetched.DateJoined.Format(accounts.DateLayout))
	})
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		account, err := tc.AccountRepo.GetByID(context.Background(), 0)
		assert.Nil(t, account)
		assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
	})
}

func TestAccountRepository_List(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		empty, err := tc.AccountRepo.List(context.Background(), accounts.NewAccountQuery())
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		for i := 0; i < 5; i++ {
			require.NoError(t, tc.AccountRepo.Create(context.Background(), CreateTestAccount(t, "")))
		}

		all, err := tc.AccountRepo.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}
	})
}

func TestAccountRepository_List_WithFiltersAndPaging(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		alice := CreateTestAccount(t, "Alice")
		bob := CreateTestAccount(t, "Bob")
		carol := CreateTestAccount(t, "Carol")
		carol.DateJoined = time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
		for _, a := range []*accounts.Account{alice, bob, carol} {
			require.NoError(t, tc.AccountRepo.Create(context.Background(), a))
		}

		byName, err := tc.AccountRepo.List(context.Background(), &accounts.AccountQuery{Name: "Bob"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, bob.ID, byName[0].ID)

		byEmail, err := tc.AccountRepo.List(context.Background(), &accounts.AccountQuery{Email: alice.Email})
		require.NoError(t, err)
		require.Len(t, byEmail, 1)
		assert.Equal(t, alice.ID, byEmail[0].ID)

		sorted, err := tc.AccountRepo.List(context.Background(), &accounts.AccountQuery{SortBy: "date_joined", SortOrder: accounts.SortOrderAsc, Limit: 1})
		require.NoError(t, err)
		require.Len(t, sorted, 1)
		assert.Equal(t, carol.ID, sorted[0].ID)

		paged, err := tc.AccountRepo.List(context.Background(), &accounts.AccountQuery{SortBy: "name", SortOrder: accounts.SortOrderDesc, Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, paged, 2)
		assert.Equal(t, "Bob", paged[0].Name)
		assert.Equal(t, "Alice", paged[1].Name)
	})
}

func TestAccountRepository_List_InvalidQuery(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		_, err := tc.AccountRepo.List(context.Background(), &accounts.AccountQuery{SortBy: "name; DROP TABLE accounts"})
		assert.ErrorIs(t, err, accounts.ErrDataValidation)
	})
}

func TestAccountRepository_UpdateByID(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		account := CreateTestAccount(t, "")
		require.NoError(t, tc.AccountRepo.Create(context.Background(), account))

		account.Name = "Jeronimo"
		account.PhoneNumber = ""
		require.NoError(t, tc.AccountRepo.UpdateByID(context.Background(), account))

		var stored models.AccountModel
		require.NoError(t, tc.DB.First(&stored, "id = ?", account.ID).Error)
		assert.Equal(t, "Jeronimo", stored.Name)
		assert.Empty(t, stored.PhoneNumber)
	})
}

func TestAccountRepository_UpdateByID_NotFound(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		account := CreateTestAccount(t, "")
		account.ID = 42

		err := tc.AccountRepo.UpdateByID(context.Background(), account)
		assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
	})
}

func TestAccountRepository_DeleteByID(t *testing.T) {
	forEachDB(t, func(t *testing.T, tc *TestContext) {
		account := CreateTestAccount(t, "")
		require.NoError(t, tc.AccountRepo.Create(context.Background(), account))

		require.NoError(t, tc.AccountRepo.DeleteByID(context.Background(), account.ID))

		var deleted models.AccountModel
		err := tc.DB.First(&deleted, "id = ?", account.ID).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		// deleting twice is fine
		assert.NoError(t, tc.AccountRepo.DeleteByID(context.Background(), account.ID))
	})
}
