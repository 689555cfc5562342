package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/view"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Read(ctx context.Context) ([]ledger.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]ledger.Transaction)
	return txs, args.Error(1)
}

func newTestAPI(t *testing.T, r *mockReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewViewHandler(r).Register(api)
	return api
}

var fixture = []ledger.Transaction{
	{Date: "2024-05-30", Description: "Rent", Category: "Important", Amount: "-700.00"},
	{Date: "2024-06-01", Description: "Salary", Category: "Income", Amount: "100.00"},
	{Date: "2024-06-02", Description: "Supermarket", Category: "Food", Amount: "-10.00"},
	{Date: "2024-06-03", Description: "Pizza", Category: "Food", Amount: "-5.00"},
	{Date: "2024-06-04", Description: "Cinema", Category: "Happy", Amount: "-2.00"},
}

func TestParseViewInput(t *testing.T) {
	state := parseViewInput(&ViewInput{Month: "06", Query: "food", SortColumn: "amount", SortDirection: 1})

	assert.Equal(t, view.State{
		Month:         "06",
		Query:         "food",
		SortColumn:    view.ColumnAmount,
		SortDirection: view.DirectionDescending,
	}, state)
}

func TestHTTP_View_Defaults(t *testing.T) {
	r := new(mockReader)
	r.On("Read", mock.Anything).Return(fixture, nil)

	resp := newTestAPI(t, r).Get("/v1/view")

	require.Equal(t, http.StatusOK, resp.Code)
	var body view.Model
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 5, body.Count)
	assert.Equal(t, view.Totals{Income: "100.00", Expense: "-717.00", Balance: "-617.00"}, body.Totals)
}

func TestHTTP_View_MonthSearchAndSort(t *testing.T) {
	r := new(mockReader)
	r.On("Read", mock.Anything).Return(fixture, nil)

	resp := newTestAPI(t, r).Get("/v1/view?month=06&query=food&sortColumn=amount&sortDirection=2")

	require.Equal(t, http.StatusOK, resp.Code)
	var body view.Model
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "Supermarket", body.Rows[0].Description)
	assert.Equal(t, "Pizza", body.Rows[1].Description)
	assert.Equal(t, "-17.00", body.Totals.Expense)
	assert.Equal(t, map[string]int{"Happy": 1, "Food": 3}, body.Report.Weights())
}

func TestHTTP_View_InvalidDirection(t *testing.T) {
	r := new(mockReader)

	resp := newTestAPI(t, r).Get("/v1/view?sortDirection=3")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	r.AssertNotCalled(t, "Read", mock.Anything)
}

func TestHTTP_View_NoFile(t *testing.T) {
	r := new(mockReader)
	r.On("Read", mock.Anything).Return(nil, storage.ErrNoFile)

	resp := newTestAPI(t, r).Get("/v1/view")

	assert.Equal(t, http.StatusConflict, resp.Code)
}
