package models

import (
	"time"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
)

// AccountModel is the GORM database model for accounts (infrastructure concern)
type AccountModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(64);not null;index"`
	Email       string    `gorm:"type:varchar(64);not null;index"`
	Address     string    `gorm:"type:varchar(256);not null"`
	PhoneNumber string    `gorm:"type:varchar(32)"`
	DateJoined  time.Time `gorm:"type:date;not null"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts GORM model to domain entity
func (m *AccountModel) ToDomain() *accounts.Account {
	return &accounts.Account{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Address:     m.Address,
		PhoneNumber: m.PhoneNumber,
		DateJoined:  accounts.DateOf(m.DateJoined),
	}
}

// FromDomain converts domain entity to GORM model
func (m *AccountModel) FromDomain(a *accounts.Account) {
	m.ID = a.ID
	m.Name = a.Name
	m.Email = a.Email
	m.Address = a.Address
	m.PhoneNumber = a.PhoneNumber
	m.DateJoined = accounts.DateOf(a.DateJoined)
}

// All returns every model the schema is made of, in migration order.
func All() []interface{} {
	return []interface{}{&AccountModel{}}
}
