package accounts

import (
	"github.com/go-playground/validator/v10"
)

// Sort orders accepted by AccountQuery
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// AccountQuery narrows down a listing of accounts. Zero values mean "no filter".
type AccountQuery struct {
	Name      string `validate:"omitempty,max=64"`
	Email     string `validate:"omitempty,max=64"`
	Limit     int    `validate:"omitempty,min=0"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=id name email date_joined"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewAccountQuery creates an AccountQuery listing every account ordered by id
func NewAccountQuery() *AccountQuery {
	return &AccountQuery{
		SortBy:    "id",
		SortOrder: SortOrderAsc,
	}
}

// Validate for validating AccountQuery struct
func (q *AccountQuery) Validate() error {
	return validationError(validator.New().Struct(q))
}
