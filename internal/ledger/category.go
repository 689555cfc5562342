package ledger

import "errors"

var ErrUnknownCategory = errors.New("unknown category")

// IncomeCategories and ExpenseCategories form the fixed vocabulary offered
// when adding a transaction.
var (
	IncomeCategories  = []string{"Income", "Refund", "Sale", "Gift"}
	ExpenseCategories = []string{"Important", "Food", "Happy", "Sponsored", "Credit"}
)

// Categories returns the selectable categories, income first.
func Categories() []string {
	all := make([]string, 0, len(IncomeCategories)+len(ExpenseCategories))
	all = append(all, IncomeCategories...)
	return append(all, ExpenseCategories...)
}

// CategoryAt resolves a selection index into the category vocabulary.
func CategoryAt(index int) (string, error) {
	all := Categories()
	if index < 0 || index >= len(all) {
		return "", ErrUnknownCategory
	}
	return all[index], nil
}

// CategoryIndex is the inverse of CategoryAt.
func CategoryIndex(name string) (int, error) {
	for i, c := range Categories() {
		if c == name {
			return i, nil
		}
	}
	return -1, ErrUnknownCategory
}

func IsExpenseCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}
