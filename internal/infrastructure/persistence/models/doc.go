// Package models holds the GORM row types of the account store and their
// conversion to and from domain accounts.
package models
