// Package jsonfile persists expenses as a single human-readable JSON
// array, rewritten in full on every append.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"budget/internal/core"
)

// Store keeps the full expense list in memory and mirrors it to a JSON
// file after each append. The file is overwritten wholesale; there is
// no atomic rename, so a crash mid-write can lose history.
type Store struct {
	mu    sync.Mutex
	path  string
	items []core.Expense
}

// Open loads the backing file at path. A missing file yields an empty
// store; a file with malformed content is an error.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Store{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read expenses file %s: %w", path, err)
	}

	var items []core.Expense
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse expenses file %s: %w", path, err)
	}
	return &Store{path: path, items: items}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append stores the expense and rewrites the backing file.
func (s *Store) Append(_ context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	if err := s.save(); err != nil {
		return fmt.Errorf("save expenses file %s: %w", s.path, err)
	}
	return nil
}

// List returns all expenses in insertion order.
func (s *Store) List(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...), nil
}

func (s *Store) save() error {
	items := s.items
	if items == nil {
		items = []core.Expense{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
