package transactions

import (
	"context"
	"sync"
)

// Store caches the most recently fetched transaction list.
type Store struct {
	mu           sync.RWMutex
	api          *API
	transactions []Transaction
}

// NewStore creates a transaction store.
func NewStore(api *API) *Store {
	return &Store{api: api}
}

// Transactions returns a copy of the cached list.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Set inserts or replaces one transaction in the cache.
func (s *Store) Set(tx Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == tx.ID {
			s.transactions[i] = tx
			return
		}
	}
	s.transactions = append(s.transactions, tx)
}

// Remove drops one transaction from the cache.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
}

// Fetch refreshes the cache from the backend.
func (s *Store) Fetch(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	list, err := s.api.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.transactions = list
	s.mu.Unlock()
	return list, nil
}
