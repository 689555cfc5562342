package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestAdd_SendsTransaction(t *testing.T) {
	tx := ledger.Transaction{Date: "2024-06-01", Description: "Pay", Category: "Income", Amount: "10.00"}
	var got apiRequest
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, c.Add(context.Background(), tx))
	assert.Equal(t, "add", got.Method)
	require.NotNil(t, got.Transaction)
	assert.Equal(t, tx, *got.Transaction)
}

func TestDelete_NotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"detail":"failed to delete transaction"}`))
	})

	err := c.Delete(context.Background(), ledger.Transaction{Date: "2024-06-01"})

	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
	assert.Contains(t, err.Error(), "failed to delete transaction")
}

func TestFetch_Transactions(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transactions":[{"date":"2024-06-01","description":"Pay","category":"Income","amount":"10.00"}]}`))
	})

	txs, err := c.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []ledger.Transaction{{Date: "2024-06-01", Description: "Pay", Category: "Income", Amount: "10.00"}}, txs)
}

func TestFetch_EmptyFile(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	txs, err := c.Fetch(context.Background())

	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.NotNil(t, txs)
}

func TestFetch_NoFileConfigured(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := c.Fetch(context.Background())

	assert.ErrorIs(t, err, storage.ErrNoFile)
}

func TestSetPath(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/path", r.URL.Path)
		var body pathBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(pathBody{Path: "/abs/" + body.Path})
	})

	resolved, err := c.SetPath(context.Background(), "budget.csv")

	require.NoError(t, err)
	assert.Equal(t, "/abs/budget.csv", resolved)
}

func TestSetPath_BadRequest(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.SetPath(context.Background(), "nope.txt")

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestPost_ServerDown(t *testing.T) {
	c := New("http://127.0.0.1:1")

	err := c.Add(context.Background(), ledger.Transaction{})

	assert.Error(t, err)
}
