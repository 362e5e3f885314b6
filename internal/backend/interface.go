// Package backend selects and constructs the expense store named by
// configuration.
package backend

import (
	"context"

	"budget/internal/store"
)

// CleanupFunc releases a backend's resources.
type CleanupFunc func() error

// Result contains the constructed store and an optional cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Type identifies a store implementation.
type Type string

const (
	JSONBackend   Type = "json"
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
