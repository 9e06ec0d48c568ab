package transport_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-budget-client/internal/apierrors"
	"github.com/jrsteele09/go-budget-client/session"
)

func TestRefreshWritesTokenMaterial(t *testing.T) {
	f := setupClientFixture(t, 2*time.Second)

	require.NoError(t, f.client.Refresh(context.Background()))

	require.Equal(t, freshToken, f.store.AccessToken())
	require.Equal(t, testSession, f.store.SessionID())
}

func TestRefreshDoesNotTouchCachedUser(t *testing.T) {
	f := setupClientFixture(t, 2*time.Second)
	f.store.SetSession(staleToken, &session.User{ID: "user-1", Email: "a@b.com"}, testSession)

	require.NoError(t, f.client.Refresh(context.Background()))

	require.Equal(t, freshToken, f.store.AccessToken())
	require.NotNil(t, f.store.User())
	require.Equal(t, "a@b.com", f.store.User().Email)
}

func TestConcurrentRefreshSharesOneCall(t *testing.T) {
	const callers = 4

	f := setupClientFixture(t, 5*time.Second)
	f.backend.mu.Lock()
	f.backend.refreshDelay = refreshDelay
	f.backend.mu.Unlock()

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.client.Refresh(context.Background())
		}()
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, <-errs)
	}
	f.backend.mu.Lock()
	defer f.backend.mu.Unlock()
	require.Equal(t, 1, f.backend.refreshCalls)
}

func TestSequentialRefreshesAreSeparateCalls(t *testing.T) {
	f := setupClientFixture(t, 2*time.Second)

	require.NoError(t, f.client.Refresh(context.Background()))
	require.NoError(t, f.client.Refresh(context.Background()))

	f.backend.mu.Lock()
	defer f.backend.mu.Unlock()
	require.Equal(t, 2, f.backend.refreshCalls)
}

func TestRefreshRejectionIsNotNetworkClass(t *testing.T) {
	f := setupClientFixture(t, 2*time.Second)
	f.backend.mu.Lock()
	f.backend.refreshMode = "reject"
	f.backend.mu.Unlock()

	err := f.client.Refresh(context.Background())

	require.Error(t, err)
	require.False(t, apierrors.IsNetwork(err))
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "REFRESH_INVALID", apiErr.Code)
	require.False(t, f.store.IsAuthenticated())
}

func TestRefreshNetworkFailureIsNetworkClass(t *testing.T) {
	f := setupClientFixture(t, 2*time.Second)
	f.backend.mu.Lock()
	f.backend.refreshMode = "drop"
	f.backend.mu.Unlock()

	err := f.client.Refresh(context.Background())

	require.Error(t, err)
	require.True(t, apierrors.IsNetwork(err))
}
