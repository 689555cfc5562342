package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/carson-networks/budget-tracker/internal/ledger"
)

// Read parses the configured file. Transactions come back sorted by date.
func (s *Storage) Read(ctx context.Context) ([]ledger.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.path == "" {
		return nil, ErrNoFile
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return ledger.Parse(string(data)), nil
}
