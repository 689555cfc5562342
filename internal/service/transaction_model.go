package service

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// AddForm is the raw input of an add operation. CategoryIndex points into
// ledger.Categories().
type AddForm struct {
	Date          string
	Description   string
	CategoryIndex int
	Amount        string
}

// Persister durably records mutations of the session's transactions.
type Persister interface {
	Add(ctx context.Context, t ledger.Transaction) error
	Delete(ctx context.Context, t ledger.Transaction) error
	Fetch(ctx context.Context) ([]ledger.Transaction, error)
}

// Confirmer is asked before a transaction is deleted.
type Confirmer func(t ledger.Transaction) (bool, error)
