package v1

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
)

// PhoneNumber accepts a JSON string or number; numbers keep their literal digits.
type PhoneNumber string

// UnmarshalJSON implements json.Unmarshaler
func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PhoneNumber(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("phone_number must be a string or a number")
		}
		*p = PhoneNumber(n.String())
		return nil
	}
}

// AccountRequest is the body accepted when creating or updating an account
type AccountRequest struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email"`
	Address     *string     `json:"address"`
	PhoneNumber PhoneNumber `json:"phone_number"`
	DateJoined  *string     `json:"date_joined"`
}

// ToDomain converts the request into an Account. Missing required attributes
// are reported as accounts.ErrDataValidation naming the attribute.
func (r *AccountRequest) ToDomain() (*accounts.Account, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"address", r.Address},
	}
	for _, attr := range required {
		if attr.value == nil {
			return nil, fmt.Errorf("%w: missing %s", accounts.ErrDataValidation, attr.name)
		}
	}

	account := &accounts.Account{
		Name:        *r.Name,
		Email:       *r.Email,
		Address:     *r.Address,
		PhoneNumber: string(r.PhoneNumber),
	}

	if r.DateJoined != nil && *r.DateJoined != "" {
		dateJoined, err := accounts.ParseDate(*r.DateJoined)
		if err != nil {
			return nil, err
		}
		account.DateJoined = dateJoined
	}

	return account, nil
}

// AccountResponse is the JSON representation of an account
type AccountResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  string `json:"date_joined"`
}

// NewAccountResponse converts a domain account into its JSON representation
func NewAccountResponse(a *accounts.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined.Format(accounts.DateLayout),
	}
}

// ErrorResponse is returned for every error status
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// IndexResponse describes the service at its root URL
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}
