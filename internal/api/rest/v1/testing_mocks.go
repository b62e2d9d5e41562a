//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"

	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAccountService) List(ctx context.Context, query *accounts.AccountQuery) ([]*accounts.Account, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Account), args.Error(1)
}

func (m *MockAccountService) GetByID(ctx context.Context, accountID uint) (*accounts.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAccountService) Update(ctx context.Context, accountID uint, changes *accounts.Account) (*accounts.Account, error) {
	args := m.Called(ctx, accountID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}

func (m *MockAccountService) DeleteByID(ctx context.Context, accountID uint) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
