package core

import "sort"

// CategoryAmount is an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Amount
}

// WeekSummary holds category totals for one Monday-Sunday window.
type WeekSummary struct {
	Start      Date
	End        Date
	ByCategory []CategoryAmount
	Total      Amount
}

// Empty reports whether no expense fell inside the window.
func (s WeekSummary) Empty() bool {
	return len(s.ByCategory) == 0
}

// Summarize filters expenses to the inclusive [start, end] window,
// groups them by category, and sums amounts per group. Categories come
// out in lexicographic order; Total is the grand total over the window.
func Summarize(expenses []Expense, start, end Date) WeekSummary {
	s := WeekSummary{Start: start, End: end}

	byCategory := make(map[string]Amount)
	for _, e := range expenses {
		if !e.Date.Within(start, end) {
			continue
		}
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		amount := byCategory[name]
		s.ByCategory = append(s.ByCategory, CategoryAmount{Name: name, Amount: amount})
		s.Total = s.Total.Add(amount)
	}
	return s
}
