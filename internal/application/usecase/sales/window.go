// Package sales contains the sales reporting use cases: month windowing,
// aggregation by representative and team, and role-scoped visibility.
package sales

import (
	"sort"
	"time"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

// WindowAll is the sentinel window that includes every transaction,
// including those whose date cell could not be parsed.
const WindowAll = "All Sales"

// MonthLabel formats a date as the window label its month belongs to,
// e.g. "October 2025".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// AvailableMonths returns the distinct month labels present across the
// transactions' normalized dates, sorted chronologically. Transactions
// without a parseable date contribute no label.
func AvailableMonths(transactions []entity.SaleTransaction) []string {
	type month struct {
		label string
		start time.Time
	}
	seen := make(map[string]struct{})
	var months []month
	for _, tx := range transactions {
		if tx.Date == nil {
			continue
		}
		label := MonthLabel(*tx.Date)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		months = append(months, month{
			label: label,
			start: time.Date(tx.Date.Year(), tx.Date.Month(), 1, 0, 0, 0, 0, time.UTC),
		})
	}

	sort.Slice(months, func(i, j int) bool { return months[i].start.Before(months[j].start) })

	labels := make([]string, 0, len(months))
	for _, m := range months {
		labels = append(labels, m.label)
	}
	return labels
}

// DefaultWindow picks the active window for a fresh load: the most recent
// month when any exist, otherwise the all-sales sentinel.
func DefaultWindow(months []string) string {
	if len(months) == 0 {
		return WindowAll
	}
	return months[len(months)-1]
}

// PreviousWindow steps to the chronologically previous month. Stepping past
// the earliest month, or from a window not in the list, is a no-op.
func PreviousWindow(months []string, current string) string {
	for i, label := range months {
		if label == current {
			if i > 0 {
				return months[i-1]
			}
			return current
		}
	}
	return current
}

// NextWindow steps to the chronologically next month. Stepping past the
// latest month, or from a window not in the list, is a no-op.
func NextWindow(months []string, current string) string {
	for i, label := range months {
		if label == current {
			if i < len(months)-1 {
				return months[i+1]
			}
			return current
		}
	}
	return current
}

// inWindow reports whether a transaction belongs to the given window.
// The all-sales sentinel (or an unset window) admits everything; a month
// window admits only transactions with a parseable date in that month.
func inWindow(tx entity.SaleTransaction, window string) bool {
	if window == "" || window == WindowAll {
		return true
	}
	if tx.Date == nil {
		return false
	}
	return MonthLabel(*tx.Date) == window
}
