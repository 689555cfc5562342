package service

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type transactionReader interface {
	Read(ctx context.Context) ([]ledger.Transaction, error)
}

// LocalPersister writes through the operator queue and reads the file
// directly. It is what the HTTP handlers persist with.
type LocalPersister struct {
	operator actionProcessor
	reader   transactionReader
}

func NewLocalPersister(op actionProcessor, reader transactionReader) *LocalPersister {
	return &LocalPersister{operator: op, reader: reader}
}

func (p *LocalPersister) Add(ctx context.Context, t ledger.Transaction) error {
	return p.operator.Process(ctx, &actions.AppendTransaction{Transaction: t})
}

func (p *LocalPersister) Delete(ctx context.Context, t ledger.Transaction) error {
	return p.operator.Process(ctx, &actions.DeleteTransaction{Transaction: t})
}

func (p *LocalPersister) Fetch(ctx context.Context) ([]ledger.Transaction, error) {
	return p.reader.Read(ctx)
}
