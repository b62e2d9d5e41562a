package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/infrastructure/persistence/models"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAccountRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAccountRepository creates a new GORM-based AccountRepository implementation
func NewGormAccountRepository(db *gorm.DB, logger logger.Logger) (accounts.AccountRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection must not be nil")
	}
	return &gormAccountRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAccountRepository) Create(ctx context.Context, account *accounts.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	account.ID = model.ID
	account.DateJoined = model.DateJoined
	r.logger.Info("Created account with id ", account.ID)
	return nil
}

func (r *gormAccountRepository) List(ctx context.Context, query *accounts.AccountQuery) ([]*accounts.Account, error) {
	if query == nil {
		query = accounts.NewAccountQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AccountModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AccountModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}
	if query.Email != "" {
		dbQuery = dbQuery.Where("email = ?", query.Email)
	}

	// SortBy is restricted to known columns by query.Validate
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	order := query.SortOrder
	if order == "" {
		order = accounts.SortOrderAsc
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	domainList := make([]*accounts.Account, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAccountRepository) GetByID(ctx context.Context, accountID uint) (*accounts.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with id %d: %w", accountID, accounts.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAccountRepository) UpdateByID(ctx context.Context, account *accounts.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)

	// a map keeps empty strings such as a cleared phone number in the UPDATE
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"email":        model.Email,
			"address":      model.Address,
			"phone_number": model.PhoneNumber,
			"date_joined":  model.DateJoined,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("account with id %d: %w", account.ID, accounts.ErrAccountNotFound)
	}

	r.logger.Info("Updated account with id ", account.ID)
	return nil
}

func (r *gormAccountRepository) DeleteByID(ctx context.Context, accountID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", accountID).Delete(&models.AccountModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Deleted account with id ", accountID)
	}
	return nil
}
