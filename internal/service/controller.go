package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/view"
)

var ErrUnknownTransaction = errors.New("transaction not in session")

// Controller owns the view state of one session and is its only mutator.
// It is not safe for concurrent use.
type Controller struct {
	svc   *Service
	state view.State
	now   func() time.Time

	rows   []ledger.Transaction
	totals view.Totals
	report view.CategoryReport
}

func NewController(p Persister, logger *logrus.Logger) *Controller {
	c := &Controller{
		svc:   NewService(p, logger),
		state: view.DefaultState(),
		now:   time.Now,
	}
	c.recompute()
	return c
}

func (c *Controller) State() view.State {
	return c.state
}

// LoadCSV replaces the session with the parsed text and selects the current
// month.
func (c *Controller) LoadCSV(text string) {
	c.svc.Store.Load(ledger.Parse(text))
	c.state.Month = c.now().Format("01")
	c.recompute()
}

// Refresh reloads the session from the persister.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.svc.Transaction.Fetch(ctx); err != nil {
		return err
	}
	c.recompute()
	return nil
}

func (c *Controller) SelectMonth(month string) {
	c.state.Month = month
	c.recompute()
}

// Search narrows the rows only. Totals and the report keep their last values.
func (c *Controller) Search(query string) {
	c.state.Query = query
	c.rows = view.Rows(c.svc.Store.Snapshot(), c.state)
}

// SortBy advances the shared direction toggle and reorders the store.
func (c *Controller) SortBy(column view.Column) {
	c.state.SortColumn = column
	c.state.SortDirection = view.NextDirection(c.state.SortDirection)
	c.svc.Store.Sort(view.Less(column, c.state.SortDirection))
	c.recompute()
}

func (c *Controller) Add(ctx context.Context, form AddForm) (ledger.Transaction, error) {
	t, err := c.svc.Transaction.Add(ctx, form)
	if err != nil {
		return ledger.Transaction{}, err
	}
	c.recompute()
	return t, nil
}

// Delete removes the session transaction with the given ID.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID, confirm Confirmer) (bool, error) {
	t, ok := c.svc.Store.Find(id)
	if !ok {
		return false, ErrUnknownTransaction
	}
	deleted, err := c.svc.Transaction.Delete(ctx, t, confirm)
	if err != nil || !deleted {
		return deleted, err
	}
	c.recompute()
	return true, nil
}

// View returns the current rows, totals and report.
func (c *Controller) View() view.Model {
	rows := make([]ledger.Transaction, len(c.rows))
	copy(rows, c.rows)
	return view.Model{
		Rows:   rows,
		Count:  len(rows),
		Totals: c.totals,
		Report: c.report,
	}
}

func (c *Controller) recompute() {
	m := view.Derive(c.svc.Store.Snapshot(), c.state)
	c.rows = m.Rows
	c.totals = m.Totals
	c.report = m.Report
}
