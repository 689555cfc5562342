package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Service holds all business logic services of a session.
type Service struct {
	Store       *ledger.Store
	Transaction *TransactionService
}

// NewService creates a new Service backed by the given persister.
func NewService(p Persister, logger *logrus.Logger) *Service {
	store := ledger.NewStore()
	return &Service{
		Store:       store,
		Transaction: NewTransactionService(p, store, logger),
	}
}
