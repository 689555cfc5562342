package ledger

import (
	"sort"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// Store is the ordered in-memory collection of transactions for a session.
type Store struct {
	mu           sync.RWMutex
	transactions []Transaction
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the whole contents of the store.
func (s *Store) Load(transactions []Transaction) {
	loaded := make([]Transaction, len(transactions))
	for i, t := range transactions {
		loaded[i] = withID(t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = loaded
}

// Append adds a transaction at the end and returns it with its session ID.
func (s *Store) Append(t Transaction) Transaction {
	t = withID(t)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)
	return t
}

// Remove deletes the first transaction structurally equal to t.
func (s *Store) Remove(t Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.transactions {
		if existing.Equal(t) {
			s.transactions = append(s.transactions[:i:i], s.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Find looks a transaction up by its session ID.
func (s *Store) Find(id uuid.UUID) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Sort reorders the store in place. The sort is stable.
func (s *Store) Sort(less func(a, b Transaction) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.transactions, func(i, j int) bool {
		return less(s.transactions[i], s.transactions[j])
	})
}

// Snapshot returns a copy of the current contents in store order.
func (s *Store) Snapshot() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

func withID(t Transaction) Transaction {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV4())
	}
	return t
}
