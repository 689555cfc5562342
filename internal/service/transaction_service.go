package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

const dateLayout = "2006-01-02"

// TransactionService applies add, delete and fetch to a Store, mirroring each
// mutation to a Persister first.
type TransactionService struct {
	persister Persister
	store     *ledger.Store
	logger    *logrus.Logger
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(p Persister, store *ledger.Store, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		persister: p,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// BuildTransaction validates an add form and fills in defaults. Expense
// categories always carry a negative amount.
func (s *TransactionService) BuildTransaction(form AddForm) (ledger.Transaction, error) {
	category, err := ledger.CategoryAt(form.CategoryIndex)
	if err != nil {
		return ledger.Transaction{}, err
	}

	amount, err := ledger.NormalizeAmount(form.Amount)
	if err != nil {
		return ledger.Transaction{}, err
	}
	amount = ledger.SignForCategory(category, amount)

	description := strings.TrimSpace(form.Description)
	if description == "" {
		description = category
	}

	date := strings.TrimSpace(form.Date)
	if date == "" {
		date = s.now().Format(dateLayout)
	}

	return ledger.Transaction{
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
	}, nil
}

// Add persists a new transaction and appends it to the store. Invalid input
// and persistence failures leave the store untouched.
func (s *TransactionService) Add(ctx context.Context, form AddForm) (ledger.Transaction, error) {
	t, err := s.BuildTransaction(form)
	if err != nil {
		s.logger.WithError(err).WithField("amount", form.Amount).Debug("TransactionService.Add.invalid")
		return ledger.Transaction{}, err
	}

	if err := s.persister.Add(ctx, t); err != nil {
		s.logger.WithError(err).WithField("transaction", t.String()).Error("TransactionService.Add.persist")
		return ledger.Transaction{}, err
	}

	return s.store.Append(t), nil
}

// Delete removes t after confirmation. It returns false when the user
// declined. The store changes only once the persister has succeeded.
func (s *TransactionService) Delete(ctx context.Context, t ledger.Transaction, confirm Confirmer) (bool, error) {
	if confirm != nil {
		ok, err := confirm(t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := s.persister.Delete(ctx, t); err != nil {
		s.logger.WithError(err).WithField("transaction", t.String()).Error("TransactionService.Delete.persist")
		return false, err
	}

	if !s.store.Remove(t) {
		s.logger.WithField("transaction", t.String()).Warn("TransactionService.Delete.notInStore")
	}
	return true, nil
}

// Fetch replaces the store with the persisted transactions.
func (s *TransactionService) Fetch(ctx context.Context) error {
	transactions, err := s.persister.Fetch(ctx)
	if err != nil {
		s.logger.WithError(err).Error("TransactionService.Fetch")
		return err
	}
	s.store.Load(transactions)
	return nil
}
