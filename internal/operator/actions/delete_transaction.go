package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// DeleteTransaction removes the first row equal to Transaction. It fails with
// storage.ErrTransactionNotFound when no row matches.
type DeleteTransaction struct {
	Transaction ledger.Transaction
}

func (a *DeleteTransaction) Name() string {
	return "DeleteTransaction"
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writer.Delete(a.Transaction)
}
