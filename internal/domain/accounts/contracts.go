package accounts

import (
	"context"
)

// AccountService defines the use cases of the account lifecycle.
type AccountService interface {
	// Create validates and stores a new account.
	// It returns the stored account including its assigned id.
	Create(ctx context.Context, account *Account) (*Account, error)

	// List retrieves all accounts considering a query filter when set.
	// It never returns a nil slice on success.
	List(ctx context.Context, query *AccountQuery) ([]*Account, error)

	// GetByID retrieves an account by its id or returns ErrAccountNotFound.
	GetByID(ctx context.Context, accountID uint) (*Account, error)

	// Update overwrites the attributes of an existing account with changes.
	// A missing account is reported before any validation of changes.
	Update(ctx context.Context, accountID uint, changes *Account) (*Account, error)

	// DeleteByID removes an account. Deleting an unknown id is not an error.
	DeleteByID(ctx context.Context, accountID uint) error
}

// AccountRepository defines the interface for Account persistence
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	List(ctx context.Context, query *AccountQuery) ([]*Account, error)
	GetByID(ctx context.Context, accountID uint) (*Account, error)
	UpdateByID(ctx context.Context, account *Account) error
	DeleteByID(ctx context.Context, accountID uint) error
}
