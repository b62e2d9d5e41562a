package accounts

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the requested id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDataValidation wraps every failure to build a valid Account or AccountQuery.
	ErrDataValidation = errors.New("invalid account data")
)
