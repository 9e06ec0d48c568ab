package accounts

import (
	"context"
	"sync"
)

// Store caches the account list of the active budget.
type Store struct {
	mu       sync.RWMutex
	api      *API
	accounts []Account
}

// NewStore creates an account store.
func NewStore(api *API) *Store {
	return &Store{api: api}
}

// Accounts returns a copy of the cached list.
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Set inserts or replaces one account in the cache.
func (s *Store) Set(account Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.accounts {
		if a.ID == account.ID {
			s.accounts[i] = account
			return
		}
	}
	s.accounts = append(s.accounts, account)
}

// Remove drops one account from the cache.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.accounts = kept
}

// Fetch refreshes the cache from the backend.
func (s *Store) Fetch(ctx context.Context, budgetID string) ([]Account, error) {
	list, err := s.api.List(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.accounts = list
	s.mu.Unlock()
	return list, nil
}
