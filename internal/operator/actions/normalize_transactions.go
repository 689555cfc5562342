package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// NormalizeTransactions rewrites every amount with two decimals and signs
// unsigned expense amounts. Unparseable amounts are left alone. Changed is
// set to the number of rows rewritten.
type NormalizeTransactions struct {
	Changed int
}

func (a *NormalizeTransactions) Name() string {
	return "NormalizeTransactions"
}

func (a *NormalizeTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	transactions := writer.Transactions()
	a.Changed = 0
	for i, t := range transactions {
		amount := t.Amount
		if normalized, err := ledger.NormalizeAmount(amount); err == nil {
			amount = normalized
		}
		amount = ledger.SignForCategory(t.Category, amount)
		if amount != t.Amount {
			transactions[i].Amount = amount
			a.Changed++
		}
	}
	writer.Replace(transactions)
	return nil
}
