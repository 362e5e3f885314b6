package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"budget/internal/core"
	"budget/internal/log"
	"budget/internal/services"
)

// Menu is the interactive loop: show options, read a choice, dispatch,
// repeat until exit. Input and output are injected so tests can drive
// a full session from buffers.
type Menu struct {
	svc    *services.ExpenseService
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

func NewMenu(svc *services.ExpenseService, in io.Reader, out io.Writer, logger *log.Logger) *Menu {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentCLI)
	}
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run drives the menu until the user exits or input ends. Validation
// problems are reported and the menu re-displays; store failures are
// returned to the caller and end the session.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Choose an option (1-4): ")
		if !ok {
			// Input closed; treat like an explicit exit.
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := m.addExpense(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.weeklySummary(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.listAll(ctx); err != nil {
				return err
			}
		case "4":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Please choose 1-4.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "BUDGET TRACKER")
	fmt.Fprintln(m.out, "1. Add expense")
	fmt.Fprintln(m.out, "2. Weekly summary")
	fmt.Fprintln(m.out, "3. List all expenses")
	fmt.Fprintln(m.out, "4. Exit")
	fmt.Fprintln(m.out)
}

// prompt writes the message and reads one line. ok is false when the
// input stream is exhausted.
func (m *Menu) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(m.out, msg)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) addExpense(ctx context.Context) error {
	raw, ok := m.prompt("Amount: $")
	if !ok {
		return nil
	}
	amount, err := core.ParseAmount(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount. Please enter a number.")
		return nil
	}

	category, ok := m.prompt("Category (e.g., Food, Transport, Entertainment): ")
	if !ok {
		return nil
	}
	description, ok := m.prompt("Description (optional): ")
	if !ok {
		return nil
	}

	e, err := m.svc.Add(ctx, amount, strings.TrimSpace(category), strings.TrimSpace(description))
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		fmt.Fprintln(m.out, "Invalid amount. Please enter a number.")
		return nil
	case errors.Is(err, core.ErrEmptyCategory):
		fmt.Fprintln(m.out, "Category cannot be empty.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(m.out, "Added $%s to %s\n", e.Amount.Dollars(), e.Category)
	return nil
}

func (m *Menu) weeklySummary(ctx context.Context) error {
	s, err := m.svc.WeeklySummary(ctx)
	if err != nil {
		return err
	}
	renderWeekSummary(m.out, s)
	return nil
}

func (m *Menu) listAll(ctx context.Context) error {
	items, err := m.svc.ListAll(ctx)
	if err != nil {
		return err
	}
	renderExpenseList(m.out, items)
	return nil
}
