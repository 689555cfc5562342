package view

import (
	"strings"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// FilterMonth keeps transactions whose month component contains month.
// AllMonths keeps everything.
func FilterMonth(transactions []ledger.Transaction, month string) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if InMonth(t, month) {
			out = append(out, t)
		}
	}
	return out
}

// InMonth reports whether t passes the month filter. The match is a substring
// match on the month component, not an exact one.
func InMonth(t ledger.Transaction, month string) bool {
	if month == AllMonths {
		return true
	}
	m, ok := t.Month()
	if !ok {
		return false
	}
	return strings.Contains(m, month)
}

// Search keeps transactions where the lower-cased, trimmed query appears in the
// description, category, date or amount. An empty query keeps everything.
func Search(transactions []ledger.Transaction, query string) []ledger.Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]ledger.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if query == "" || matches(t, query) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t ledger.Transaction, query string) bool {
	for _, field := range []string{t.Description, t.Category, t.Date, t.Amount} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
