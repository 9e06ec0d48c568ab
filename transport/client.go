package transport

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/jrsteele09/go-budget-client/internal/apierrors"
	"github.com/jrsteele09/go-budget-client/internal/config"
	"github.com/jrsteele09/go-budget-client/internal/metrics"
	"github.com/jrsteele09/go-budget-client/session"
)

// Client is the HTTP transport for the budget API. Every request is stamped
// with the bearer token from the session store; a 401 response triggers one
// shared token refresh and a single retry of the original request.
//
// The refresh call itself runs on a separate bare client so a rejected
// refresh can never recurse back into the 401 pipeline.
type Client struct {
	rest        *resty.Client
	refreshRest *resty.Client
	store       *session.Store
	flight      singleflight.Group
	notifier    Notifier
	navigator   Navigator
	log         zerolog.Logger
}

// RequestOptions describes one API call.
type RequestOptions struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Silent suppresses the user-facing error notification for this call.
	// Used by refresh and logout so a deliberate background check does not
	// produce a spurious toast.
	Silent bool
}

// Option configures optional Client collaborators.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// WithNotifier sets the user-facing error notifier (toast analog).
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithNavigator sets the forced-navigation handler used on session expiry.
func WithNavigator(n Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

// NewClient creates the transport. The base URL must include the /api
// prefix. Both the main and the refresh client share one cookie jar so the
// HttpOnly refresh cookie set at login flows into refresh calls.
func NewClient(cfg config.Config, store *session.Store, options ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[NewClient] config is required")
	}
	if store == nil {
		return nil, errors.New("[NewClient] session store is required")
	}
	if cfg.GetBaseURL() == "" {
		return nil, errors.New("[NewClient] base URL is required")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "[NewClient] cookiejar.New")
	}

	c := &Client{
		store: store,
		log:   log.Logger,
	}
	c.rest = newRestyClient(cfg, jar)
	c.refreshRest = newRestyClient(cfg, jar)

	c.rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := store.AccessToken(); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})
	c.refreshRest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	for _, opt := range options {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NewLogNotifier(c.log)
	}
	if c.navigator == nil {
		c.navigator = NewLogNavigator(c.log)
	}
	return c, nil
}

func newRestyClient(cfg config.Config, jar http.CookieJar) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.GetBaseURL()).
		SetTimeout(cfg.GetTimeout()).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json")
}

// Do executes one API call, decoding a JSON success body into out when out
// is non-nil. Non-2xx responses come back as tagged errors: *APIError or
// *RateLimitError for server responses, *NetworkError for transport
// failures, ErrSessionExpired when a 401 could not be recovered, and
// ErrRestorationInFlight when a 401 arrived while startup restoration was
// still running.
func (c *Client) Do(ctx context.Context, opts RequestOptions, out any) error {
	return c.do(ctx, opts, out, false)
}

func (c *Client) do(ctx context.Context, opts RequestOptions, out any, retried bool) error {
	resp, err := c.execute(ctx, opts, out)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(metrics.OutcomeNetworkError).Inc()
		if !opts.Silent {
			c.notifier.Error(apierrors.FallbackMessage)
		}
		return errors.Wrapf(&apierrors.NetworkError{Err: err}, "[Client.Do] %s %s", opts.Method, opts.Path)
	}
	if resp.IsSuccess() {
		metrics.RequestsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized && !retried && !isRefreshPath(opts.Path) {
		if c.store.Restoration() != nil {
			// Startup restoration owns the refresh credential right now. Fail
			// fast instead of racing a second refresh path.
			metrics.RequestsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
			return errors.Wrapf(apierrors.ErrRestorationInFlight, "[Client.Do] %s %s", opts.Method, opts.Path)
		}
		if refreshErr := c.Refresh(ctx); refreshErr != nil {
			c.expireSession(refreshErr)
			metrics.RequestsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
			return errors.Wrapf(apierrors.ErrSessionExpired, "[Client.Do] %s %s", opts.Method, opts.Path)
		}
		metrics.RequestRetries.Inc()
		return c.do(ctx, opts, out, true)
	}

	apiErr := apierrors.Decode(resp.StatusCode(), resp.Body())
	metrics.RequestsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
	if !opts.Silent {
		c.notifier.Error(userMessage(apiErr))
	}
	return errors.Wrapf(apiErr, "[Client.Do] %s %s", opts.Method, opts.Path)
}

func (c *Client) execute(ctx context.Context, opts RequestOptions, out any) (*resty.Response, error) {
	req := c.rest.R().SetContext(ctx)
	if len(opts.Query) > 0 {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}
	if out != nil {
		req.SetResult(out)
	}
	return req.Execute(opts.Method, opts.Path)
}

// expireSession runs after a failed refresh: the session is cleared, the
// user is told why, and the client is sent to the login entry point. A
// network-class failure reads differently from a definitive rejection, since
// only the latter means the refresh credential itself is dead.
func (c *Client) expireSession(refreshErr error) {
	c.store.ClearSession()
	if apierrors.IsNetwork(refreshErr) {
		c.notifier.Error("Could not reach the server. Please sign in again.")
	} else {
		c.notifier.Error("Your session has expired. Please sign in again.")
	}
	c.log.Warn().Err(refreshErr).Msg("session expired, redirecting to login")
	c.navigator.NavigateToLogin(nil)
}

func isRefreshPath(path string) bool {
	return strings.Contains(path, refreshPath)
}

func userMessage(err error) string {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var rateErr *apierrors.RateLimitError
	if errors.As(err, &rateErr) {
		return rateErr.Message
	}
	return apierrors.FallbackMessage
}
