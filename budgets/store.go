package budgets

import (
	"context"
	"sync"
)

// Keeper persists the active-budget selection across restarts. Only the
// selection is persisted; tokens never are.
type Keeper interface {
	Load() string
	Save(id string)
}

// NewMemoryKeeper returns a Keeper that lives for the process, the default
// for embedders without durable client-side storage.
func NewMemoryKeeper() Keeper {
	return &memoryKeeper{}
}

type memoryKeeper struct {
	mu sync.Mutex
	id string
}

func (k *memoryKeeper) Load() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.id
}

func (k *memoryKeeper) Save(id string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.id = id
}

// Store caches the budget list and tracks the active budget selection.
type Store struct {
	mu       sync.RWMutex
	api      *API
	keeper   Keeper
	budgets  []Budget
	activeID string
}

// NewStore creates a budget store. keeper may be nil, in which case the
// selection is process-local.
func NewStore(api *API, keeper Keeper) *Store {
	if keeper == nil {
		keeper = NewMemoryKeeper()
	}
	return &Store{api: api, keeper: keeper}
}

// Hydrate restores the persisted active-budget selection. Called once at
// startup, before any session exists.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = s.keeper.Load()
}

// Budgets returns a copy of the cached list.
func (s *Store) Budgets() []Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// ActiveID returns the selected budget id, empty when none is selected.
func (s *Store) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Select marks a budget as active and persists the selection.
func (s *Store) Select(id string) {
	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()
	s.keeper.Save(id)
}

// Set inserts or replaces one budget in the cache.
func (s *Store) Set(budget Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.budgets {
		if b.ID == budget.ID {
			s.budgets[i] = budget
			return
		}
	}
	s.budgets = append(s.budgets, budget)
}

// Remove drops one budget from the cache and clears the selection if it
// pointed at the removed budget.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.budgets = kept
	if s.activeID == id {
		s.activeID = ""
	}
}

// Fetch refreshes the cache from the backend. When no active budget is
// selected yet, the first fetched budget becomes active.
func (s *Store) Fetch(ctx context.Context) ([]Budget, error) {
	list, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.budgets = list
	if s.activeID == "" && len(list) > 0 {
		s.activeID = list[0].ID
	}
	active := s.activeID
	s.mu.Unlock()
	if active != "" {
		s.keeper.Save(active)
	}
	return list, nil
}
