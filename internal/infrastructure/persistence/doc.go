// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store accounts in PostgreSQL or SQLite,
// translating store-level errors into the domain errors of package accounts.
package persistence
