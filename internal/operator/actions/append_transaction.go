package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

type AppendTransaction struct {
	Transaction ledger.Transaction
}

func (a *AppendTransaction) Name() string {
	return "AppendTransaction"
}

func (a *AppendTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	writer.Append(a.Transaction)
	return nil
}
