package budgets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-budget-client/budgets"
	"github.com/jrsteele09/go-budget-client/internal/config"
	"github.com/jrsteele09/go-budget-client/session"
	"github.com/jrsteele09/go-budget-client/transport"
)

func budgetFixtures() []budgets.Budget {
	return []budgets.Budget{
		{ID: "b-1", Name: "Household", Currency: "GBP", InitialBalance: "0"},
		{ID: "b-2", Name: "Holiday", Currency: "EUR", InitialBalance: "500"},
	}
}

func setupBudgetStore(t *testing.T, list []budgets.Budget, keeper budgets.Keeper) *budgets.Store {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/budgets", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := session.NewStore()
	store.SetAccessToken("token", "session")
	client, err := transport.NewClient(
		config.Static{BaseURL: server.URL + "/api", Timeout: 2 * time.Second},
		store,
	)
	require.NoError(t, err)

	return budgets.NewStore(budgets.NewAPI(client), keeper)
}

func TestFetchSelectsFirstBudgetWhenNoneActive(t *testing.T) {
	keeper := budgets.NewMemoryKeeper()
	store := setupBudgetStore(t, budgetFixtures(), keeper)

	list, err := store.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b-1", store.ActiveID())
	require.Equal(t, "b-1", keeper.Load())
}

func TestFetchKeepsExistingSelection(t *testing.T) {
	keeper := budgets.NewMemoryKeeper()
	keeper.Save("b-2")
	store := setupBudgetStore(t, budgetFixtures(), keeper)
	store.Hydrate()

	_, err := store.Fetch(context.Background())

	require.NoError(t, err)
	require.Equal(t, "b-2", store.ActiveID())
}

func TestFetchWithEmptyListLeavesNoSelection(t *testing.T) {
	store := setupBudgetStore(t, nil, nil)

	list, err := store.Fetch(context.Background())

	require.NoError(t, err)
	require.Empty(t, list)
	require.Empty(t, store.ActiveID())
}

func TestSelectPersistsThroughKeeper(t *testing.T) {
	keeper := budgets.NewMemoryKeeper()
	store := budgets.NewStore(nil, keeper)

	store.Select("b-2")

	require.Equal(t, "b-2", store.ActiveID())
	require.Equal(t, "b-2", keeper.Load())

	// A fresh store hydrates the same selection back.
	restored := budgets.NewStore(nil, keeper)
	restored.Hydrate()
	require.Equal(t, "b-2", restored.ActiveID())
}

func TestSetInsertsAndReplaces(t *testing.T) {
	store := budgets.NewStore(nil, nil)

	store.Set(budgets.Budget{ID: "b-1", Name: "Household"})
	store.Set(budgets.Budget{ID: "b-2", Name: "Holiday"})
	store.Set(budgets.Budget{ID: "b-1", Name: "Renamed"})

	list := store.Budgets()
	require.Len(t, list, 2)
	require.Equal(t, "Renamed", list[0].Name)
}

func TestRemoveClearsSelectionForRemovedBudget(t *testing.T) {
	store := budgets.NewStore(nil, nil)
	store.Set(budgets.Budget{ID: "b-1"})
	store.Set(budgets.Budget{ID: "b-2"})
	store.Select("b-2")

	store.Remove("b-2")

	require.Len(t, store.Budgets(), 1)
	require.Empty(t, store.ActiveID())

	// Removing an inactive budget leaves the selection alone.
	store.Select("b-1")
	store.Remove("b-9")
	require.Equal(t, "b-1", store.ActiveID())
}

func TestBudgetsReturnsCopy(t *testing.T) {
	store := budgets.NewStore(nil, nil)
	store.Set(budgets.Budget{ID: "b-1", Name: "Household"})

	list := store.Budgets()
	list[0].Name = "Mutated"

	require.Equal(t, "Household", store.Budgets()[0].Name)
}
