package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/carson-networks/budget-tracker/internal/config"
)

var (
	ErrNoFile              = errors.New("no csv file configured")
	ErrInvalidPath         = errors.New("path does not resolve to an existing .csv file")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrWriterClosed        = errors.New("writer already committed or rolled back")
)

// Storage is the CSV file the server persists transactions to. The path can
// be changed at runtime; readers and the single writer are serialized on mu.
type Storage struct {
	mu   sync.RWMutex
	path string
}

func NewStorage(env *config.Config) (*Storage, error) {
	s := &Storage{}
	if env.CSVPath == "" {
		return s, nil
	}
	if _, err := s.SetPath(env.CSVPath); err != nil {
		return nil, err
	}
	return s, nil
}

// ResolvePath expands a leading ~ and makes the path absolute.
func ResolvePath(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrInvalidPath
	}
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		input = filepath.Join(home, input[1:])
	}
	return filepath.Abs(filepath.Clean(input))
}

// SetPath points the storage at an existing .csv file and returns the
// resolved absolute path.
func (s *Storage) SetPath(input string) (string, error) {
	resolved, err := ResolvePath(input)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(resolved), ".csv") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, resolved)
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, resolved)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = resolved
	return resolved, nil
}

func (s *Storage) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}
