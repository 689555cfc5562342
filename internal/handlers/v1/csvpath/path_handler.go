package csvpath

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// PathBody is the request and response body of POST /path.
type PathBody struct {
	Path string `json:"path" minLength:"1" doc:"CSV file path; ~ expands to the home directory"`
}

// PathInput is the Huma input for POST /path.
type PathInput struct {
	Body PathBody
}

// PathOutput returns the resolved absolute path.
type PathOutput struct {
	Body PathBody
}

type pathSetter interface {
	SetPath(input string) (string, error)
}

// PathHandler handles POST /path.
type PathHandler struct {
	Storage pathSetter
}

func NewPathHandler(s pathSetter) *PathHandler {
	return &PathHandler{Storage: s}
}

func (h *PathHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-path",
		Method:      http.MethodPost,
		Path:        "/path",
		Summary:     "Set CSV path",
		Description: "Points the server at an existing .csv file.",
		Tags:        []string{"Storage"},
	}, h.handle)
}

func (h *PathHandler) handle(ctx context.Context, input *PathInput) (*PathOutput, error) {
	resolved, err := h.Storage.SetPath(input.Body.Path)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid path", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set path", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("csvPath", resolved)
	}
	return &PathOutput{Body: PathBody{Path: resolved}}, nil
}
