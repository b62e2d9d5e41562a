package app

import (
	"context"
	"fmt"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"
)

// accountService implements the AccountService interface on top of an AccountRepository
type accountService struct {
	accountRepo accounts.AccountRepository
	logger      logger.Logger
}

// NewAccountService creates a new accountService instance
func NewAccountService(accountRepo accounts.AccountRepository, logger logger.Logger) (accounts.AccountService, error) {
	if accountRepo == nil {
		return nil, fmt.Errorf("account repository must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}, nil
}

// Create stores a new account. A missing join date defaults to today.
func (s *accountService) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	if account == nil {
		return nil, fmt.Errorf("%w: account must not be nil", accounts.ErrDataValidation)
	}

	created := *account
	created.ID = 0
	if created.DateJoined.IsZero() {
		created.DateJoined = accounts.Today()
	}

	if err := created.Validate(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &created, nil
}

// List retrieves all accounts matching query.
func (s *accountService) List(ctx context.Context, query *accounts.AccountQuery) ([]*accounts.Account, error) {
	if query == nil {
		query = accounts.NewAccountQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accountList, err := s.accountRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accountList == nil {
		accountList = []*accounts.Account{}
	}
	s.logger.Debug("Listed ", len(accountList), " accounts")

	return accountList, nil
}

// GetByID retrieves an account by its id.
func (s *accountService) GetByID(ctx context.Context, accountID uint) (*accounts.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// Update replaces the attributes of an existing account with changes.
func (s *accountService) Update(ctx context.Context, accountID uint, changes *accounts.Account) (*accounts.Account, error) {
	account, err := s.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if changes == nil {
		return nil, fmt.Errorf("%w: changes must not be nil", accounts.ErrDataValidation)
	}

	account.ApplyChanges(changes)
	if err := account.Validate(); err != nil {
		s.logger.Warn("Rejected update of account ", accountID, ": ", err)
		return nil, err
	}

	if err := s.accountRepo.UpdateByID(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// DeleteByID removes an account; unknown ids are ignored.
func (s *accountService) DeleteByID(ctx context.Context, accountID uint) error {
	if err := s.accountRepo.DeleteByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
