package backend

import (
	"context"
	"path/filepath"
	"testing"

	"budget/internal/config"
)

func TestCreateBackend(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(nil)

	t.Run("memory", func(t *testing.T) {
		result, err := factory.CreateBackend(ctx, Config{Type: MemoryBackend})
		if err != nil {
			t.Fatalf("create memory backend: %v", err)
		}
		if result.Store == nil {
			t.Fatal("memory backend returned nil store")
		}
		if result.Cleanup != nil {
			t.Fatal("memory backend needs no cleanup")
		}
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "expenses.json")
		result, err := factory.CreateBackend(ctx, Config{Type: JSONBackend, BudgetFile: path})
		if err != nil {
			t.Fatalf("create json backend: %v", err)
		}
		if result.Store == nil {
			t.Fatal("json backend returned nil store")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "budget.db")
		result, err := factory.CreateBackend(ctx, Config{Type: SQLiteBackend, SQLiteDBPath: path})
		if err != nil {
			t.Fatalf("create sqlite backend: %v", err)
		}
		if result.Cleanup == nil {
			t.Fatal("sqlite backend must expose a cleanup function")
		}
		if err := result.Cleanup(); err != nil {
			t.Fatalf("cleanup: %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := factory.CreateBackend(ctx, Config{Type: "redis"}); err == nil {
			t.Fatal("unknown backend type should fail")
		}
	})

	t.Run("json without path", func(t *testing.T) {
		if _, err := factory.CreateBackend(ctx, Config{Type: JSONBackend}); err == nil {
			t.Fatal("json backend without a file path should fail")
		}
	})
}

func TestFromAppConfig(t *testing.T) {
	cfg := &config.Config{
		DataBackend:  "json",
		BudgetFile:   "expenses.json",
		SQLiteDBPath: "./data/budget.db",
	}
	bc, err := FromAppConfig(cfg)
	if err != nil {
		t.Fatalf("convert config: %v", err)
	}
	if bc.Type != JSONBackend || bc.BudgetFile != "expenses.json" {
		t.Fatalf("unexpected backend config: %+v", bc)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("nil app config should fail")
	}

	cfg.DataBackend = "mongo"
	if _, err := FromAppConfig(cfg); err == nil {
		t.Fatal("unknown backend in app config should fail")
	}
}
