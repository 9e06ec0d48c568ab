package authapi

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-budget-client/session"
	"github.com/jrsteele09/go-budget-client/transport"
)

// Service wraps the auth endpoints and keeps the session store in sync with
// their results. Login and refresh return token material only; the profile
// comes from a separate who-am-I fetch.
type Service struct {
	client *transport.Client
	store  *session.Store
	log    zerolog.Logger
}

// ServiceOption configures optional Service collaborators.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = logger
	}
}

// New creates the auth service.
func New(client *transport.Client, store *session.Store, options ...ServiceOption) (*Service, error) {
	if client == nil {
		return nil, errors.New("[authapi.New] transport client is required")
	}
	if store == nil {
		return nil, errors.New("[authapi.New] session store is required")
	}
	s := &Service{
		client: client,
		store:  store,
		log:    log.Logger,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

type tokenMaterial struct {
	AccessToken string `json:"accessToken"`
	SessionID   string `json:"sessionId"`
}

type registerResponse struct {
	tokenMaterial
	User *session.User `json:"user"`
}

// Login authenticates with email and password. On success the token material
// is written into the store and the profile is fetched; a failed profile
// fetch does not fail the login, the cached user simply lags behind the
// token.
func (s *Service) Login(ctx context.Context, email, password string) error {
	var out tokenMaterial
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": email, "password": password},
	}, &out)
	if err != nil {
		return errors.Wrap(err, "[Service.Login]")
	}
	s.store.SetAccessToken(out.AccessToken, out.SessionID)

	if _, err := s.CurrentUser(ctx); err != nil {
		s.log.Warn().Err(err).Msg("profile fetch after login failed")
	}
	return nil
}

// RegisterParams is the payload for account creation.
type RegisterParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates an account and starts a session from the response, which
// carries the profile alongside the token material.
func (s *Service) Register(ctx context.Context, params RegisterParams) error {
	var out registerResponse
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   params,
	}, &out)
	if err != nil {
		return errors.Wrap(err, "[Service.Register]")
	}
	s.store.SetSession(out.AccessToken, out.User, out.SessionID)
	return nil
}

// Logout revokes the server-side refresh cookie and clears the local
// session. The local clear happens regardless of the call's outcome; a
// failed logout must not leave the client looking signed in.
func (s *Service) Logout(ctx context.Context) error {
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Silent: true,
	}, nil)
	s.store.ClearSession()
	if err != nil {
		return errors.Wrap(err, "[Service.Logout]")
	}
	return nil
}

// RestoreSession attempts startup session recovery from the refresh cookie.
// Concurrent callers and the navigation guard share the same attempt.
func (s *Service) RestoreSession(ctx context.Context) bool {
	return s.store.RestoreSession(ctx, s.client)
}

// CurrentUser fetches the authenticated profile (including the
// email-confirmation timestamp) and caches it in the store.
func (s *Service) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/users/me",
	}, &user)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.CurrentUser]")
	}
	s.store.SetUser(&user)
	return &user, nil
}

// ConfirmEmail confirms the address with the token from the confirmation
// email.
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/auth/confirm-email",
		Body:   map[string]string{"token": token},
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[Service.ConfirmEmail]")
	}
	return nil
}

// ResendConfirmEmail asks for a new confirmation email. A 429 comes back as
// *apierrors.RateLimitError carrying the retry-after duration.
func (s *Service) ResendConfirmEmail(ctx context.Context) error {
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/auth/resend-confirm-email",
		Silent: true,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[Service.ResendConfirmEmail]")
	}
	return nil
}

// ChangePassword rotates the password. The response carries fresh token
// material (the server revokes other sessions), which replaces the current
// one.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	var out tokenMaterial
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/auth/change-password",
		Body:   map[string]string{"currentPassword": currentPassword, "newPassword": newPassword},
	}, &out)
	if err != nil {
		return errors.Wrap(err, "[Service.ChangePassword]")
	}
	s.store.SetAccessToken(out.AccessToken, out.SessionID)
	return nil
}
