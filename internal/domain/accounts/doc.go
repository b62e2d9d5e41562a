// Package accounts defines the Account entity, its validation rules and the
// contracts the application and persistence layers implement to manage the
// lifecycle of customer accounts.
package accounts
