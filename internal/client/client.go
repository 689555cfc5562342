// Package client talks to a running budget-tracker server. Client implements
// service.Persister so a CLI session persists through the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type apiRequest struct {
	Method      string              `json:"method"`
	Transaction *ledger.Transaction `json:"transaction,omitempty"`
}

type apiResponse struct {
	Transaction  *ledger.Transaction  `json:"transaction"`
	Transactions []ledger.Transaction `json:"transactions"`
}

type pathBody struct {
	Path string `json:"path"`
}

type problem struct {
	Detail string `json:"detail"`
}

func (c *Client) Add(ctx context.Context, t ledger.Transaction) error {
	return c.post(ctx, "/api", apiRequest{Method: "add", Transaction: &t}, nil)
}

func (c *Client) Delete(ctx context.Context, t ledger.Transaction) error {
	return c.post(ctx, "/api", apiRequest{Method: "delete", Transaction: &t}, nil)
}

func (c *Client) Fetch(ctx context.Context) ([]ledger.Transaction, error) {
	var resp apiResponse
	if err := c.post(ctx, "/api", apiRequest{Method: "fetch"}, &resp); err != nil {
		return nil, err
	}
	if resp.Transactions == nil {
		return []ledger.Transaction{}, nil
	}
	return resp.Transactions, nil
}

// SetPath points the server at a CSV file and returns the path it resolved.
func (c *Client) SetPath(ctx context.Context, path string) (string, error) {
	var resp pathBody
	if err := c.post(ctx, "/path", pathBody{Path: path}, &resp); err != nil {
		return "", err
	}
	return resp.Path, nil
}

// post sends body as JSON. Anything but 200 is an error; there are no retries.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var p problem
		_ = json.NewDecoder(resp.Body).Decode(&p)
		return statusError(resp.StatusCode, p.Detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// statusError maps the server's status codes back onto the storage and
// ledger errors that produced them.
func statusError(code int, detail string) error {
	var sentinel error
	switch code {
	case http.StatusNotFound:
		sentinel = storage.ErrTransactionNotFound
	case http.StatusConflict:
		sentinel = storage.ErrNoFile
	default:
		sentinel = ErrUnexpectedStatus
	}
	if detail == "" {
		return fmt.Errorf("%w (%d)", sentinel, code)
	}
	return fmt.Errorf("%w (%d): %s", sentinel, code, detail)
}
