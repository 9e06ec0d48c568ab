package authapi

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// SessionInfo describes one server-side session record, as listed by
// GET /auth/sessions.
type SessionInfo struct {
	ID         string     `json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	UserAgent  *string    `json:"userAgent"`
	IP         *string    `json:"ip"`
	ExpiresAt  time.Time  `json:"expiresAt"`
}

// Current reports whether this record is the session the client is running
// under.
func (si SessionInfo) Current(sessionID string) bool {
	return sessionID != "" && si.ID == sessionID
}

// Sessions lists the user's active sessions.
func (s *Service) Sessions(ctx context.Context) ([]SessionInfo, error) {
	var out []SessionInfo
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/auth/sessions",
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Sessions]")
	}
	return out, nil
}

// RevokeSession revokes one session by id.
func (s *Service) RevokeSession(ctx context.Context, sessionID string) error {
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/auth/sessions/" + sessionID,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[Service.RevokeSession]")
	}
	return nil
}

// RevokeAllSessions revokes every session except the current one.
func (s *Service) RevokeAllSessions(ctx context.Context) error {
	err := s.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/auth/sessions",
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[Service.RevokeAllSessions]")
	}
	return nil
}
