package guard

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-budget-client/session"
)

// DecisionKind classifies the guard's verdict for a navigation.
type DecisionKind int

const (
	// Allow lets the navigation proceed.
	Allow DecisionKind = iota
	// RedirectLogin sends the client to the login view, preserving the
	// original query so the user can return to the intended destination.
	RedirectLogin
	// RedirectConfirmEmail sends an authenticated but unconfirmed user to
	// the confirm-email interstitial.
	RedirectConfirmEmail
)

// Decision is the outcome of one guard evaluation. Title is the document
// title from route metadata, set whenever the navigation is allowed.
type Decision struct {
	Kind   DecisionKind
	Title  string
	Target string
	Query  url.Values
}

// Guard decides, before each navigation, whether the target view may be
// shown. It consults the session store and waits out any in-flight startup
// restoration before redirecting, so a hard reload on a protected route does
// not bounce a valid session to the login page.
type Guard struct {
	store *session.Store
	log   zerolog.Logger
}

// GuardOption configures optional Guard collaborators.
type GuardOption func(*Guard)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) GuardOption {
	return func(g *Guard) {
		g.log = logger
	}
}

// New creates a navigation guard over the session store.
func New(store *session.Store, options ...GuardOption) (*Guard, error) {
	if store == nil {
		return nil, errors.New("[guard.New] session store is required")
	}
	g := &Guard{
		store: store,
		log:   log.Logger,
	}
	for _, opt := range options {
		opt(g)
	}
	return g, nil
}

// Evaluate decides whether navigation to route may proceed. query carries
// the navigation's query parameters and is preserved on a login redirect.
//
// When the target requires authentication and a session restoration is in
// flight, the decision suspends until that specific attempt settles — it
// neither starts a new one nor races ahead of it.
func (g *Guard) Evaluate(ctx context.Context, route RouteMeta, query url.Values) Decision {
	if !route.RequiresAuth {
		return Decision{Kind: Allow, Title: route.Title}
	}

	if r := g.store.Restoration(); r != nil {
		g.log.Debug().Str("route", route.Name).Msg("navigation waiting for session restoration")
		r.Wait(ctx)
	}

	if !g.store.IsAuthenticated() {
		return Decision{Kind: RedirectLogin, Target: LoginPath, Query: query}
	}

	if route.RequiresConfirmedEmail {
		// A nil profile means the who-am-I fetch has not settled yet; the
		// confirmation gate only fires on a known-unconfirmed address.
		if user := g.store.User(); user != nil && !user.EmailConfirmed() {
			return Decision{Kind: RedirectConfirmEmail, Target: ConfirmEmailPath}
		}
	}

	return Decision{Kind: Allow, Title: route.Title}
}
