// Package services provides the expense operations behind the
// interactive menu: record, weekly summary, full listing.
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"budget/internal/core"
	"budget/internal/log"
	"budget/internal/store"
)

// ExpenseService orchestrates expense operations over a Store.
type ExpenseService struct {
	store  store.Store
	logger *log.Logger
	now    func() time.Time
}

// NewExpenseService creates a service over the given store. The now
// function supplies "today" and may be nil, defaulting to time.Now;
// tests pass a fixed clock.
func NewExpenseService(st store.Store, logger *log.Logger, now func() time.Time) *ExpenseService {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentExpense)
	}
	if now == nil {
		now = time.Now
	}
	return &ExpenseService{
		store:  st,
		logger: logger,
		now:    now,
	}
}

// Add records an expense dated today and persists it immediately.
// The stored expense is returned for the confirmation message.
func (s *ExpenseService) Add(ctx context.Context, amount core.Amount, category, description string) (core.Expense, error) {
	e := core.Expense{
		Date:        core.DateOf(s.now()),
		Amount:      amount,
		Category:    category,
		Description: description,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	if err := s.store.Append(ctx, e); err != nil {
		return core.Expense{}, fmt.Errorf("append expense: %w", err)
	}

	s.logger.Info("Expense recorded",
		log.FieldOperation, log.OpAppend,
		log.FieldCategory, e.Category,
		log.FieldAmount, e.Amount.Dollars())
	return e, nil
}

// WeeklySummary aggregates category totals for the Monday-Sunday
// window containing today.
func (s *ExpenseService) WeeklySummary(ctx context.Context) (core.WeekSummary, error) {
	start, end := core.WeekOf(core.DateOf(s.now()))

	items, err := s.store.List(ctx)
	if err != nil {
		return core.WeekSummary{}, fmt.Errorf("list expenses: %w", err)
	}

	summary := core.Summarize(items, start, end)
	s.logger.Debug("Weekly summary computed",
		log.FieldOperation, log.OpSummary,
		log.FieldWeekStart, start.String(),
		log.FieldWeekEnd, end.String(),
		log.FieldCount, len(summary.ByCategory))
	return summary, nil
}

// ListAll returns every expense, newest date first. Expenses sharing a
// date keep their original insertion order.
func (s *ExpenseService) ListAll(ctx context.Context) ([]core.Expense, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}
