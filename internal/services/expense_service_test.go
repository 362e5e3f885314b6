package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget/internal/core"
	"budget/internal/store/memory"
)

// Wednesday 2026-08-26; its week runs Monday 2026-08-24 through
// Sunday 2026-08-30.
var testNow = func() time.Time {
	return time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)
}

func newTestService() (*ExpenseService, *memory.Store) {
	st := memory.New()
	return NewExpenseService(st, nil, testNow), st
}

func TestAddStampsToday(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()

	got, err := svc.Add(ctx, core.NewAmount(12.50), "Food", "groceries")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !got.Date.Equal(core.NewDate(2026, 8, 26)) {
		t.Fatalf("date = %s, want 2026-08-26", got.Date)
	}
	if got.Amount.Dollars() != "12.50" || got.Category != "Food" || got.Description != "groceries" {
		t.Fatalf("stored expense = %+v", got)
	}

	items, _ := st.List(ctx)
	if len(items) != 1 {
		t.Fatalf("store has %d items, want 1", len(items))
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()

	if _, err := svc.Add(ctx, core.NewAmount(-3), "Food", ""); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.Add(ctx, core.NewAmount(3), "  ", ""); !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
	if st.Len() != 0 {
		t.Fatal("rejected expenses must not reach the store")
	}
}

func TestWeeklySummaryScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	if _, err := svc.Add(ctx, core.NewAmount(12.50), "Food", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(ctx, core.NewAmount(7.00), "Food", ""); err != nil {
		t.Fatal(err)
	}

	s, err := svc.WeeklySummary(ctx)
	if err != nil {
		t.Fatalf("weekly summary: %v", err)
	}
	if len(s.ByCategory) != 1 || s.ByCategory[0].Name != "Food" {
		t.Fatalf("summary rows = %+v, want single Food row", s.ByCategory)
	}
	if s.ByCategory[0].Amount.Dollars() != "19.50" {
		t.Fatalf("Food total = %s, want 19.50", s.ByCategory[0].Amount.Dollars())
	}
	if s.Total.Dollars() != "19.50" {
		t.Fatalf("grand total = %s, want 19.50", s.Total.Dollars())
	}
}

func TestWeeklySummaryExcludesOtherWeeks(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	// Recorded during the previous week.
	lastWeek := core.Expense{Date: core.NewDate(2026, 8, 21), Amount: core.NewAmount(100), Category: "Food"}
	if err := st.Append(ctx, lastWeek); err != nil {
		t.Fatal(err)
	}

	svc := NewExpenseService(st, nil, testNow)
	if _, err := svc.Add(ctx, core.NewAmount(5), "Food", ""); err != nil {
		t.Fatal(err)
	}

	s, err := svc.WeeklySummary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.Total.Dollars() != "5.00" {
		t.Fatalf("total = %s, want 5.00 (last week's record must not contribute)", s.Total.Dollars())
	}
	if !s.Start.Equal(core.NewDate(2026, 8, 24)) || !s.End.Equal(core.NewDate(2026, 8, 30)) {
		t.Fatalf("window = [%s, %s], want [2026-08-24, 2026-08-30]", s.Start, s.End)
	}
}

func TestWeeklySummaryEmptyStore(t *testing.T) {
	svc, _ := newTestService()
	s, err := svc.WeeklySummary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !s.Empty() {
		t.Fatal("empty store should yield an empty summary")
	}
}

func TestListAllSortsDateDescendingStable(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	seed := []core.Expense{
		{Date: core.NewDate(2026, 8, 20), Amount: core.NewAmount(1), Category: "A"},
		{Date: core.NewDate(2026, 8, 26), Amount: core.NewAmount(2), Category: "B"},
		{Date: core.NewDate(2026, 8, 26), Amount: core.NewAmount(3), Category: "C"},
		{Date: core.NewDate(2026, 8, 22), Amount: core.NewAmount(4), Category: "D"},
	}
	for _, e := range seed {
		if err := st.Append(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	svc := NewExpenseService(st, nil, testNow)
	items, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"B", "C", "D", "A"} // B before C: same date, insertion order
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, cat := range want {
		if items[i].Category != cat {
			t.Fatalf("item %d = %s, want %s", i, items[i].Category, cat)
		}
	}
}

func TestListAllEmpty(t *testing.T) {
	svc, _ := newTestService()
	items, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items, want 0", len(items))
	}
}
