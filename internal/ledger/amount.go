package ledger

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// IsExpenseAmount reports whether a stored amount string marks an expense.
func IsExpenseAmount(amount string) bool {
	return strings.HasPrefix(amount, "-")
}

// NormalizeAmount parses raw input and formats it with exactly two decimals.
// Unparseable input and amounts that round to zero return ErrInvalidAmount.
func NormalizeAmount(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidAmount
	}
	d = d.Round(2)
	if d.IsZero() {
		return "", ErrInvalidAmount
	}
	return d.StringFixed(2), nil
}

// SignForCategory prefixes a minus to unsigned amounts of expense categories.
func SignForCategory(category, amount string) string {
	if IsExpenseCategory(category) && !IsExpenseAmount(amount) {
		return "-" + amount
	}
	return amount
}

// ParseAmount parses a stored amount, treating unreadable values as zero.
func ParseAmount(amount string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders a decimal the way amounts are stored.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
