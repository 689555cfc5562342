package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/view"
)

// ViewInput is the Huma input for GET /v1/view.
type ViewInput struct {
	Month         string `query:"month" default:"00" doc:"Two-digit month, 00 for all months"`
	Query         string `query:"query" doc:"Case-insensitive search over all fields"`
	SortColumn    string `query:"sortColumn" default:"date" enum:"date,description,category,amount" doc:"Column to sort by"`
	SortDirection int    `query:"sortDirection" default:"0" minimum:"0" maximum:"2" doc:"0 resets to date order, 1 descending, 2 ascending"`
}

// ViewOutput is the Huma output for GET /v1/view.
type ViewOutput struct {
	Body view.Model
}

type transactionReader interface {
	Read(ctx context.Context) ([]ledger.Transaction, error)
}

// ViewHandler handles GET /v1/view.
type ViewHandler struct {
	Reader transactionReader
}

func NewViewHandler(r transactionReader) *ViewHandler {
	return &ViewHandler{Reader: r}
}

func (h *ViewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-view",
		Method:      http.MethodGet,
		Path:        "/v1/view",
		Summary:     "Derived view",
		Description: "Returns filtered rows, totals and the category report of the CSV file.",
		Tags:        []string{"View"},
	}, h.handle)
}

// parseViewInput maps query parameters onto a view state. Huma has already
// checked the enum and range tags.
func parseViewInput(input *ViewInput) view.State {
	column, _ := view.ParseColumn(input.SortColumn)
	return view.State{
		Month:         input.Month,
		Query:         input.Query,
		SortColumn:    column,
		SortDirection: view.Direction(input.SortDirection),
	}
}

func (h *ViewHandler) handle(ctx context.Context, input *ViewInput) (*ViewOutput, error) {
	logData := logging.GetLogData(ctx)
	state := parseViewInput(input)

	transactions, err := h.Reader.Read(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoFile) {
			return nil, huma.NewError(http.StatusConflict, "no csv file configured", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read transactions", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deriveMs")
	}
	model := view.Derive(view.Sort(transactions, state.SortColumn, state.SortDirection), state)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("rowCount", model.Count)
	}
	return &ViewOutput{Body: model}, nil
}
