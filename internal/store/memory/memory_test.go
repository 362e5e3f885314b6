package memory

import (
	"context"
	"errors"
	"testing"

	"budget/internal/core"
)

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := core.Expense{Date: core.NewDate(2026, 8, 24), Amount: core.NewAmount(12.50), Category: "Food"}
	second := core.Expense{Date: core.NewDate(2026, 8, 25), Amount: core.NewAmount(3.20), Category: "Transport"}
	for _, e := range []core.Expense{first, second} {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Category != "Food" || items[1].Category != "Transport" {
		t.Fatalf("insertion order not preserved: %s, %s", items[0].Category, items[1].Category)
	}
}

func TestAppendValidates(t *testing.T) {
	s := New()
	bad := core.Expense{Date: core.NewDate(2026, 8, 24), Amount: core.NewAmount(-5), Category: "Food"}
	if err := s.Append(context.Background(), bad); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("rejected expense must not be stored")
	}
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	e := core.Expense{Date: core.NewDate(2026, 8, 24), Amount: core.NewAmount(1), Category: "Food"}
	if err := s.Append(ctx, e); err != nil {
		t.Fatal(err)
	}

	items, _ := s.List(ctx)
	items[0].Category = "mutated"

	again, _ := s.List(ctx)
	if again[0].Category != "Food" {
		t.Fatal("List must return a copy, not the backing slice")
	}
}
