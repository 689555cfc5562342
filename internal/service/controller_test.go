package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/view"
)

const controllerCSV = `date,description,category,amount
2024-06-03,Supermarket,Food,-10.00
2024-05-20,Old rent,Important,-700.00
2024-06-01,Salary,Income,100.00
2024-06-04,Pizza,Food,-5.00
2024-06-02,Cinema,Happy,-2.00
`

func newTestController(t *testing.T) (*Controller, *mockPersister) {
	t.Helper()
	p := new(mockPersister)
	c := NewController(p, testLogger())
	c.now = fixedNow
	c.svc.Transaction.now = fixedNow
	return c, p
}

func descriptions(rows []ledger.Transaction) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Description
	}
	return out
}

func TestController_LoadCSVSelectsCurrentMonth(t *testing.T) {
	c, _ := newTestController(t)

	c.LoadCSV(controllerCSV)

	assert.Equal(t, "06", c.State().Month)
	m := c.View()
	assert.Equal(t, []string{"Salary", "Cinema", "Supermarket", "Pizza"}, descriptions(m.Rows))
	assert.Equal(t, view.Totals{Income: "100.00", Expense: "-17.00", Balance: "83.00"}, m.Totals)
	assert.Equal(t, map[string]int{"Happy": 1, "Food": 3}, m.Report.Weights())
}

func TestController_SearchKeepsTotals(t *testing.T) {
	c, _ := newTestController(t)
	c.LoadCSV(controllerCSV)
	before := c.View()

	c.Search("FOOD")

	m := c.View()
	assert.Equal(t, []string{"Supermarket", "Pizza"}, descriptions(m.Rows))
	assert.Equal(t, 2, m.Count)
	assert.Equal(t, before.Totals, m.Totals)
	assert.Equal(t, before.Report, m.Report)
}

func TestController_SelectAllMonths(t *testing.T) {
	c, _ := newTestController(t)
	c.LoadCSV(controllerCSV)

	c.SelectMonth(view.AllMonths)

	m := c.View()
	assert.Equal(t, 5, m.Count)
	assert.Equal(t, "-717.00", m.Totals.Expense)
}

func TestController_SortCycle(t *testing.T) {
	c, _ := newTestController(t)
	c.LoadCSV(controllerCSV)

	c.SortBy(view.ColumnAmount)
	assert.Equal(t, view.DirectionDescending, c.State().SortDirection)
	assert.Equal(t, []string{"Salary", "Cinema", "Pizza", "Supermarket"}, descriptions(c.View().Rows))

	c.SortBy(view.ColumnAmount)
	assert.Equal(t, []string{"Supermarket", "Pizza", "Cinema", "Salary"}, descriptions(c.View().Rows))

	c.SortBy(view.ColumnAmount)
	assert.Equal(t, view.DirectionReset, c.State().SortDirection)
	assert.Equal(t, []string{"Salary", "Cinema", "Supermarket", "Pizza"}, descriptions(c.View().Rows))
}

func TestController_AddAndDelete(t *testing.T) {
	c, p := newTestController(t)
	c.LoadCSV(controllerCSV)
	p.On("Add", mock.Anything, mock.Anything).Return(nil)
	p.On("Delete", mock.Anything, mock.Anything).Return(nil)

	added, err := c.Add(context.Background(), AddForm{Description: "Bread", CategoryIndex: foodIndex, Amount: "3"})
	require.NoError(t, err)
	assert.Equal(t, "-3.00", added.Amount)
	assert.Equal(t, 5, c.View().Count)
	assert.Equal(t, "-20.00", c.View().Totals.Expense)

	deleted, err := c.Delete(context.Background(), added.ID, accept)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 4, c.View().Count)
	assert.Equal(t, "-17.00", c.View().Totals.Expense)
}

func TestController_DeleteUnknownID(t *testing.T) {
	c, p := newTestController(t)
	c.LoadCSV(controllerCSV)

	_, err := c.Delete(context.Background(), uuid.Must(uuid.NewV4()), accept)

	assert.ErrorIs(t, err, ErrUnknownTransaction)
	p.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestController_Refresh(t *testing.T) {
	c, p := newTestController(t)
	p.On("Fetch", mock.Anything).Return([]ledger.Transaction{
		{Date: "2024-01-05", Description: "Gift", Category: "Gift", Amount: "20.00"},
	}, nil)

	require.NoError(t, c.Refresh(context.Background()))

	m := c.View()
	assert.Equal(t, 1, m.Count)
	assert.Equal(t, "20.00", m.Totals.Balance)
}
