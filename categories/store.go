package categories

import (
	"context"
	"sync"
)

// Store caches the category list of the active budget.
type Store struct {
	mu         sync.RWMutex
	api        *API
	categories []Category
}

// NewStore creates a category store.
func NewStore(api *API) *Store {
	return &Store{api: api}
}

// Categories returns a copy of the cached list.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ByType filters the cached list by category type.
func (s *Store) ByType(t Type) []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Category
	for _, c := range s.categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Set inserts or replaces one category in the cache.
func (s *Store) Set(category Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == category.ID {
			s.categories[i] = category
			return
		}
	}
	s.categories = append(s.categories, category)
}

// Remove drops one category from the cache.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
}

// Fetch refreshes the cache from the backend.
func (s *Store) Fetch(ctx context.Context, budgetID string) ([]Category, error) {
	list, err := s.api.List(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.categories = list
	s.mu.Unlock()
	return list, nil
}
