package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ritsch1/devops-capstone-project/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO-8601 calendar date format accounts are exchanged in.
const DateLayout = "2006-01-02"

// Account entity
type Account struct {
	ID          uint
	Name        string    `validate:"required,min=1,max=64"`
	Email       string    `validate:"required,email,max=64"`
	Address     string    `validate:"required,min=1,max=256"`
	PhoneNumber string    `validate:"omitempty,max=32,phonenumber"`
	DateJoined  time.Time `validate:"required"`
}

// Validate for validating Account struct
func (a *Account) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.PhoneNumberTag, validators.PhoneNumberValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return validationError(validate.Struct(a))
}

// ApplyChanges copies every mutable attribute of changes onto the account.
// The id is never touched and a zero DateJoined keeps the current one.
func (a *Account) ApplyChanges(changes *Account) {
	a.Name = changes.Name
	a.Email = changes.Email
	a.Address = changes.Address
	a.PhoneNumber = changes.PhoneNumber
	if !changes.DateJoined.IsZero() {
		a.DateJoined = DateOf(changes.DateJoined)
	}
}

// Today returns the current UTC calendar date at midnight.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf strips the time of day from t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not in YYYY-MM-DD format", ErrDataValidation, value)
	}
	return t, nil
}

func validationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrDataValidation, messages)
	}
	return fmt.Errorf("%w: %v", ErrDataValidation, err)
}
