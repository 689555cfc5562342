package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/budget-tracker/internal/logging"
)

type pathReporter interface {
	Path() string
}

type Handler struct {
	Storage pathReporter
}

type response struct {
	Status  string `json:"status"`
	CSVPath string `json:"csvPath,omitempty"`
}

func NewHandler(s pathReporter) Handler {
	return Handler{Storage: s}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	path := h.Storage.Path()
	logData.AddData("csvConfigured", path != "")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response{Status: "ok", CSVPath: path})
}
