package view

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Totals are the summary amounts of the month-filtered set, formatted to two
// decimals. Expense is zero or negative.
type Totals struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// CategoryCard is one entry of the expense report. Weight grows by rank, not
// by magnitude: the smallest spend gets 1, the next 3, and so on.
type CategoryCard struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Weight   int    `json:"weight"`
}

// CategoryReport lists cards in ascending weight order.
type CategoryReport struct {
	Cards []CategoryCard `json:"cards"`
}

// Weights maps category to weight.
func (r CategoryReport) Weights() map[string]int {
	weights := make(map[string]int, len(r.Cards))
	for _, c := range r.Cards {
		weights[c.Category] = c.Weight
	}
	return weights
}

// ComputeTotals sums income and expense amounts for the month.
func ComputeTotals(transactions []ledger.Transaction, month string) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range FilterMonth(transactions, month) {
		amount := ledger.ParseAmount(t.Amount)
		if t.IsExpense() {
			expense = expense.Add(amount)
		} else {
			income = income.Add(amount)
		}
	}
	return Totals{
		Income:  ledger.FormatAmount(income),
		Expense: ledger.FormatAmount(expense),
		Balance: ledger.FormatAmount(income.Add(expense)),
	}
}

// BuildCategoryReport sums absolute expense amounts per category for the month
// and ranks categories from smallest to largest spend.
func BuildCategoryReport(transactions []ledger.Transaction, month string) CategoryReport {
	type entry struct {
		category string
		total    decimal.Decimal
	}

	var entries []*entry
	index := map[string]*entry{}
	for _, t := range FilterMonth(transactions, month) {
		if !t.IsExpense() {
			continue
		}
		e, ok := index[t.Category]
		if !ok {
			e = &entry{category: t.Category, total: decimal.Zero}
			index[t.Category] = e
			entries = append(entries, e)
		}
		e.total = e.total.Add(ledger.ParseAmount(t.Amount).Abs())
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].total.LessThan(entries[j].total)
	})

	report := CategoryReport{Cards: make([]CategoryCard, len(entries))}
	weight := 1
	for i, e := range entries {
		report.Cards[i] = CategoryCard{
			Category: e.category,
			Total:    ledger.FormatAmount(e.total),
			Weight:   weight,
		}
		weight += 2
	}
	return report
}
