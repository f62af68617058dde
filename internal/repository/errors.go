// Package repository holds the database/sql data access layer.
package repository

import "errors"

// ErrNotConfigured is returned when a repository is used without a
// database handle.
var ErrNotConfigured = errors.New("repository: no database configured")
