package transport

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/internal/apierrors"
	"github.com/jrsteele09/go-budget-client/internal/metrics"
)

const refreshPath = "/auth/refresh"

// refreshResponse is the canonical refresh contract: token material only,
// the profile is fetched separately through /users/me.
type refreshResponse struct {
	AccessToken string `json:"accessToken"`
	SessionID   string `json:"sessionId"`
}

// Refresh performs the token-refresh call at most once per need. When a
// refresh is already in flight, the caller shares its outcome instead of
// issuing a second network call; the in-flight slot is cleared the instant
// the call settles, so a later genuine need triggers a fresh call.
//
// The call relies on the ambient HttpOnly refresh cookie and bypasses the
// 401 pipeline entirely. On success the new token material is written into
// the session store. Failure is only classified here (network vs rejected);
// what to do about it is the caller's policy.
func (c *Client) Refresh(ctx context.Context) error {
	_, err, _ := c.flight.Do("refresh", func() (any, error) {
		return nil, c.doRefresh(ctx)
	})
	return err
}

func (c *Client) doRefresh(ctx context.Context) error {
	var out refreshResponse
	resp, err := c.refreshRest.R().
		SetContext(ctx).
		SetResult(&out).
		Post(refreshPath)
	if err != nil {
		metrics.RefreshTotal.WithLabelValues(metrics.OutcomeNetworkError).Inc()
		return errors.Wrap(&apierrors.NetworkError{Err: err}, "[Client.Refresh]")
	}
	if !resp.IsSuccess() {
		metrics.RefreshTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return errors.Wrap(apierrors.Decode(resp.StatusCode(), resp.Body()), "[Client.Refresh] refresh rejected")
	}

	c.store.SetAccessToken(out.AccessToken, out.SessionID)
	metrics.RefreshTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.log.Debug().Msg("access token refreshed")
	return nil
}
