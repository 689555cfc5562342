package view

import "github.com/carson-networks/budget-tracker/internal/ledger"

// Model is everything a renderer needs for one screen.
type Model struct {
	Rows   []ledger.Transaction `json:"rows"`
	Count  int                  `json:"count"`
	Totals Totals               `json:"totals"`
	Report CategoryReport       `json:"report"`
}

// Rows applies the month filter and then the search query. Order is the
// order of the input.
func Rows(transactions []ledger.Transaction, state State) []ledger.Transaction {
	return Search(FilterMonth(transactions, state.Month), state.Query)
}

// Derive computes rows, totals and the category report. The input is taken
// as already sorted.
func Derive(transactions []ledger.Transaction, state State) Model {
	rows := Rows(transactions, state)
	return Model{
		Rows:   rows,
		Count:  len(rows),
		Totals: ComputeTotals(transactions, state.Month),
		Report: BuildCategoryReport(transactions, state.Month),
	}
}
