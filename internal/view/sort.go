package view

import (
	"sort"
	"strings"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Less returns the ordering used for a column and direction. DirectionReset
// always orders by date ascending, whatever the column.
func Less(column Column, direction Direction) func(a, b ledger.Transaction) bool {
	if direction == DirectionReset {
		return func(a, b ledger.Transaction) bool {
			return a.Date < b.Date
		}
	}
	return func(a, b ledger.Transaction) bool {
		c := compare(column, a, b)
		if direction == DirectionDescending {
			return c > 0
		}
		return c < 0
	}
}

// Sort returns a stably sorted copy.
func Sort(transactions []ledger.Transaction, column Column, direction Direction) []ledger.Transaction {
	out := make([]ledger.Transaction, len(transactions))
	copy(out, transactions)
	less := Less(column, direction)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func compare(column Column, a, b ledger.Transaction) int {
	switch column {
	case ColumnDate:
		return strings.Compare(a.Date, b.Date)
	case ColumnDescription:
		return strings.Compare(a.Description, b.Description)
	case ColumnCategory:
		return strings.Compare(a.Category, b.Category)
	case ColumnAmount:
		return ledger.ParseAmount(a.Amount).Cmp(ledger.ParseAmount(b.Amount))
	default:
		return 0
	}
}
