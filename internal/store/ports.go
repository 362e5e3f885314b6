// Package store defines the persistence port for expense records.
package store

import (
	"context"

	"budget/internal/core"
)

// Store persists an append-only sequence of expenses.
type Store interface {
	// Append validates and persists one expense. The write is
	// synchronous: when Append returns nil the record is durable.
	Append(ctx context.Context, e core.Expense) error

	// List returns every stored expense in insertion order.
	List(ctx context.Context) ([]core.Expense, error)
}
