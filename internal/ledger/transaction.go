package ledger

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Transaction is a single income or expense row of the CSV file.
// ID is assigned by the Store for the lifetime of a session and is never
// persisted or used for equality.
type Transaction struct {
	ID          uuid.UUID `json:"-"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
}

// Equal reports whether both transactions carry the same four fields.
func (t Transaction) Equal(other Transaction) bool {
	return t.Date == other.Date &&
		t.Description == other.Description &&
		t.Category == other.Category &&
		t.Amount == other.Amount
}

// IsExpense reports whether the amount is signed as an expense.
func (t Transaction) IsExpense() bool {
	return IsExpenseAmount(t.Amount)
}

// Month returns the second dash-delimited component of the date, or false
// when the date has none.
func (t Transaction) Month() (string, bool) {
	first := -1
	for i := 0; i < len(t.Date); i++ {
		if t.Date[i] != '-' {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		return t.Date[first+1 : i], true
	}
	if first < 0 {
		return "", false
	}
	return t.Date[first+1:], true
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", t.Date, t.Description, t.Category, t.Amount)
}
