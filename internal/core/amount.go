// Package core provides the expense domain model: dates, amounts,
// and weekly aggregation.
//
// This file contains amount parsing and handling. Amounts are decimal
// values so that sums like 12.50 + 7.00 come out exact; they serialize
// to JSON as bare numbers, never quoted strings.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value.
type Amount struct {
	decimal.Decimal
}

// NewAmount creates an Amount from a float. Intended for tests and
// fixtures; ParseAmount is the entry point for user input.
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// ParseAmount converts user input to an Amount.
//
// Leading and trailing whitespace is ignored. Returns ErrInvalidAmount
// for anything that is not a finite, non-negative number.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return Amount{d}, nil
}

func (a Amount) Validate() error {
	if a.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of a and b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Dollars formats the amount with two decimal places, without a
// currency symbol.
func (a Amount) Dollars() string {
	return a.StringFixed(2)
}

// MarshalJSON emits the amount as a bare JSON number so the persisted
// file keeps a numeric amount field.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts a JSON number (or, leniently, a quoted one).
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	a.Decimal = d
	return nil
}
