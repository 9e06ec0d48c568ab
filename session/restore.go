package session

import (
	"context"
	"time"

	"github.com/jrsteele09/go-budget-client/internal/metrics"
)

// Refresher performs the token-refresh network call and, on success, writes
// the new token material into the store. Implemented by transport.Client.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Restoration is the handle to an in-flight startup restoration attempt. At
// most one exists at a time; concurrent consumers (the navigation guard)
// wait on the same attempt instead of triggering their own.
type Restoration struct {
	done chan struct{}
	ok   bool
}

// Wait blocks until the restoration settles and returns its outcome. A
// cancelled context counts as not restored.
func (r *Restoration) Wait(ctx context.Context) bool {
	select {
	case <-r.done:
		return r.ok
	case <-ctx.Done():
		return false
	}
}

// Restoration returns the handle to the in-flight restoration attempt, or
// nil when none is running. The transport consults this before starting an
// independent refresh on a 401.
func (s *Store) Restoration() *Restoration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restoration
}

// RestoreSession attempts to recover a session at startup using only the
// browser-held refresh credential. The refresher writes token material into
// the store on success.
//
// On failure any partial session state is cleared and false is returned; no
// redirect happens here, since a failed restoration on a public page is
// expected. The handle is cleared the instant the attempt settles, before
// waiters observe its outcome. Calling this while an attempt is already in
// flight joins that attempt instead of starting a second one.
func (s *Store) RestoreSession(ctx context.Context, refresher Refresher) bool {
	s.mu.Lock()
	if s.restoration != nil {
		existing := s.restoration
		s.mu.Unlock()
		return existing.Wait(ctx)
	}
	r := &Restoration{done: make(chan struct{})}
	s.restoration = r
	s.mu.Unlock()

	err := refresher.Refresh(ctx)

	s.mu.Lock()
	r.ok = err == nil
	if err != nil {
		s.accessToken = ""
		s.sessionID = ""
		s.user = nil
		s.tokenExpiry = time.Time{}
	}
	s.restoration = nil
	s.mu.Unlock()
	close(r.done)

	if r.ok {
		metrics.RestorationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	} else {
		metrics.RestorationsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
	}
	return r.ok
}
