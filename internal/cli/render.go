package cli

import (
	"fmt"
	"io"
	"strings"

	"budget/internal/core"
)

const (
	bannerWidth    = 50
	listRuleWidth  = 70
	descriptionMax = 28
)

func renderWeekSummary(w io.Writer, s core.WeekSummary) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "WEEKLY SUMMARY (%s to %s)\n", s.Start, s.End)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	if s.Empty() {
		fmt.Fprintln(w, "No expenses recorded this week.")
		return
	}

	for _, c := range s.ByCategory {
		fmt.Fprintf(w, "%-20s $%8s\n", c.Name, c.Amount.Dollars())
	}
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
	fmt.Fprintf(w, "%-20s $%8s\n", "TOTAL", s.Total.Dollars())
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

func renderExpenseList(w io.Writer, items []core.Expense) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No expenses recorded yet.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-12s %-15s %-10s %s\n", "Date", "Category", "Amount", "Description")
	fmt.Fprintln(w, strings.Repeat("-", listRuleWidth))
	for _, e := range items {
		fmt.Fprintf(w, "%-12s %-15s $%8s  %s\n",
			e.Date, e.Category, e.Amount.Dollars(), truncate(e.Description, descriptionMax))
	}
	fmt.Fprintln(w)
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
