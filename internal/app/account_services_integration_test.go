//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	input := persistence.CreateTestAccount(t, "Lifecycle User")
	created, err := services.AccountService.Create(ctx, input)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := services.AccountService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, fetched.Email)

	changes := *fetched
	changes.Name = "Jeronimo"
	changes.PhoneNumber = "42"
	updated, err := services.AccountService.Update(ctx, created.ID, &changes)
	require.NoError(t, err)
	assert.Equal(t, "Jeronimo", updated.Name)

	list, err := services.AccountService.List(ctx, &accounts.AccountQuery{Name: "Jeronimo"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "42", list[0].PhoneNumber)

	require.NoError(t, services.AccountService.DeleteByID(ctx, created.ID))
	_, err = services.AccountService.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)

	// deleting an account that is already gone is not an error
	assert.NoError(t, services.AccountService.DeleteByID(ctx, created.ID))
}

func TestAccountService_Create_DefaultsDateJoined(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	input := persistence.CreateTestAccount(t, "")
	input.DateJoined = accounts.Account{}.DateJoined

	created, err := services.AccountService.Create(context.Background(), input)
	require.NoError(t, err)

	fetched, err := services.AccountService.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, accounts.Today(), fetched.DateJoined)
}
