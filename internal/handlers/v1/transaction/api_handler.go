package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

const (
	MethodAdd    = "add"
	MethodDelete = "delete"
	MethodFetch  = "fetch"
)

// ApiBody is the request body of POST /api.
type ApiBody struct {
	Method      string       `json:"method" enum:"add,delete,fetch" doc:"Operation to apply to the CSV file"`
	Transaction *Transaction `json:"transaction,omitempty" doc:"Required for add and delete"`
}

// ApiInput is the Huma input for POST /api.
type ApiInput struct {
	Body ApiBody
}

// ApiResponseBody carries the stored transaction for add and the file
// contents for fetch.
type ApiResponseBody struct {
	Transaction  *Transaction  `json:"transaction,omitempty" doc:"Transaction as written to the file"`
	Transactions []Transaction `json:"transactions,omitempty" doc:"All transactions, sorted by date"`
}

// ApiOutput is the Huma output for POST /api.
type ApiOutput struct {
	Body ApiResponseBody
}

// ApiHandler handles POST /api.
type ApiHandler struct {
	Persister service.Persister
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(p service.Persister) *ApiHandler {
	return &ApiHandler{Persister: p}
}

// Register registers the endpoint with the Huma API.
func (h *ApiHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-api",
		Method:      http.MethodPost,
		Path:        "/api",
		Summary:     "Add, delete or fetch transactions",
		Description: "Applies one mutation to the configured CSV file, or returns its contents.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseApiInput returns the transaction to mutate, with the amount normalized
// for add.
func parseApiInput(input *ApiInput) (ledger.Transaction, error) {
	if input.Body.Transaction == nil {
		return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "transaction is required for "+input.Body.Method)
	}

	t := input.Body.Transaction.toLedger()
	if input.Body.Method == MethodAdd {
		amount, err := ledger.NormalizeAmount(t.Amount)
		if err != nil {
			return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		t.Amount = amount
	}
	return t, nil
}

func (h *ApiHandler) handle(ctx context.Context, input *ApiInput) (*ApiOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("apiMethod", input.Body.Method)
	}

	if input.Body.Method == MethodFetch {
		return h.fetch(ctx, logData)
	}

	t, err := parseApiInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming(input.Body.Method + "Ms")
	}
	if input.Body.Method == MethodAdd {
		err = h.Persister.Add(ctx, t)
	} else {
		err = h.Persister.Delete(ctx, t)
	}
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError("failed to "+input.Body.Method+" transaction", err)
	}

	stored := fromLedger(t)
	return &ApiOutput{Body: ApiResponseBody{Transaction: &stored}}, nil
}

func (h *ApiHandler) fetch(ctx context.Context, logData *logging.LogData) (*ApiOutput, error) {
	transactions, err := h.Persister.Fetch(ctx)
	if err != nil {
		return nil, toHumaError("failed to fetch transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ApiResponseBody{Transactions: make([]Transaction, len(transactions))}
	for i, t := range transactions {
		resp.Transactions[i] = fromLedger(t)
	}
	return &ApiOutput{Body: resp}, nil
}

func toHumaError(msg string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, storage.ErrTransactionNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, storage.ErrNoFile):
		return huma.NewError(http.StatusConflict, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
