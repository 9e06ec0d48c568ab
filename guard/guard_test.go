package guard_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-budget-client/guard"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/jrsteele09/go-budget-client/session"
)

const (
	testToken     = "access-token-1"
	testSessionID = "session-1"
)

var protectedRoute = guard.RouteMeta{
	Name:         "transactions",
	Path:         "/transactions",
	Title:        "Transactions",
	RequiresAuth: true,
}

// delayedRefresher settles after a delay, like a real refresh call landing
// while the first navigation is already being evaluated.
type delayedRefresher struct {
	store *session.Store
	delay time.Duration
	err   error
}

func (r delayedRefresher) Refresh(ctx context.Context) error {
	time.Sleep(r.delay)
	if r.err != nil {
		return r.err
	}
	r.store.SetAccessToken(testToken, testSessionID)
	return nil
}

func setupGuard(t *testing.T) (*guard.Guard, *session.Store) {
	t.Helper()
	store := session.NewStore()
	g, err := guard.New(store)
	require.NoError(t, err)
	return g, store
}

func TestPublicRouteAllowedWithTitle(t *testing.T) {
	g, _ := setupGuard(t)
	route, ok := guard.Lookup(guard.RouteLogin)
	require.True(t, ok)

	decision := g.Evaluate(context.Background(), route, nil)

	require.Equal(t, guard.Allow, decision.Kind)
	require.Equal(t, "Sign in", decision.Title)
}

func TestProtectedRouteRedirectsToLoginPreservingQuery(t *testing.T) {
	g, _ := setupGuard(t)
	query := url.Values{"budgetId": {"b-1"}, "month": {"2026-08"}}

	decision := g.Evaluate(context.Background(), protectedRoute, query)

	require.Equal(t, guard.RedirectLogin, decision.Kind)
	require.Equal(t, guard.LoginPath, decision.Target)
	require.Equal(t, query, decision.Query)
}

func TestProtectedRouteAllowedWhenAuthenticated(t *testing.T) {
	g, store := setupGuard(t)
	store.SetAccessToken(testToken, testSessionID)

	decision := g.Evaluate(context.Background(), protectedRoute, nil)

	require.Equal(t, guard.Allow, decision.Kind)
	require.Equal(t, "Transactions", decision.Title)
}

// The race fix: a navigation evaluated while restoration is in flight must
// wait for that attempt and honour its outcome, not redirect prematurely.
func TestGuardWaitsForRestorationSuccess(t *testing.T) {
	g, store := setupGuard(t)

	go store.RestoreSession(context.Background(), delayedRefresher{store: store, delay: 50 * time.Millisecond})
	require.Eventually(t, func() bool {
		return store.Restoration() != nil
	}, time.Second, time.Millisecond)

	start := time.Now()
	decision := g.Evaluate(context.Background(), protectedRoute, nil)

	require.Equal(t, guard.Allow, decision.Kind)
	require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestGuardRedirectsAfterRestorationFailure(t *testing.T) {
	g, store := setupGuard(t)
	refresher := delayedRefresher{
		store: store,
		delay: 50 * time.Millisecond,
		err:   errors.New("refresh rejected"),
	}

	go store.RestoreSession(context.Background(), refresher)
	require.Eventually(t, func() bool {
		return store.Restoration() != nil
	}, time.Second, time.Millisecond)

	decision := g.Evaluate(context.Background(), protectedRoute, nil)

	require.Equal(t, guard.RedirectLogin, decision.Kind)
}

func TestConfirmedEmailGate(t *testing.T) {
	route := guard.RouteMeta{
		Name:                   "budget-settings",
		Title:                  "Budget settings",
		RequiresAuth:           true,
		RequiresConfirmedEmail: true,
	}

	g, store := setupGuard(t)
	store.SetSession(testToken, &session.User{ID: "user-1", Email: "a@b.com"}, testSessionID)

	decision := g.Evaluate(context.Background(), route, nil)
	require.Equal(t, guard.RedirectConfirmEmail, decision.Kind)
	require.Equal(t, guard.ConfirmEmailPath, decision.Target)

	store.SetUser(&session.User{
		ID:               "user-1",
		Email:            "a@b.com",
		EmailConfirmedAt: utils.Ptr(time.Now()),
	})
	decision = g.Evaluate(context.Background(), route, nil)
	require.Equal(t, guard.Allow, decision.Kind)
}

func TestConfirmedEmailGateSkippedWhileProfileUnknown(t *testing.T) {
	route := guard.RouteMeta{
		Name:                   "budget-settings",
		RequiresAuth:           true,
		RequiresConfirmedEmail: true,
	}

	g, store := setupGuard(t)
	store.SetAccessToken(testToken, testSessionID)

	decision := g.Evaluate(context.Background(), route, nil)
	require.Equal(t, guard.Allow, decision.Kind)
}

func TestRouteTableLookup(t *testing.T) {
	for _, name := range []string{
		guard.RouteLogin, guard.RouteHome, guard.RouteBudgets,
		guard.RouteSessions, guard.RouteNotFound,
	} {
		route, ok := guard.Lookup(name)
		require.True(t, ok, name)
		require.NotEmpty(t, route.Path, name)
		require.NotEmpty(t, route.Title, name)
	}

	_, ok := guard.Lookup("no-such-route")
	require.False(t, ok)

	home, _ := guard.Lookup(guard.RouteHome)
	require.True(t, home.RequiresAuth)
	login, _ := guard.Lookup(guard.RouteLogin)
	require.False(t, login.RequiresAuth)
}
