package apierrors_test

import (
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-budget-client/internal/apierrors"
)

func TestDecodeStructuredBody(t *testing.T) {
	body := []byte(`{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid email or password"}}`)

	err := apierrors.Decode(http.StatusUnauthorized, body)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	require.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestDecodeMalformedBodyFallsBack(t *testing.T) {
	for _, body := range [][]byte{nil, []byte("<html>502</html>"), []byte(`{"unexpected":true}`)} {
		err := apierrors.Decode(http.StatusBadGateway, body)

		var apiErr *apierrors.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "UNKNOWN", apiErr.Code)
		require.Equal(t, apierrors.FallbackMessage, apiErr.Message)
	}
}

func TestDecodeRateLimit(t *testing.T) {
	body := []byte(`{"error":{"code":"RATE_LIMITED","message":"Try again later"},"retryAfter":42}`)

	err := apierrors.Decode(http.StatusTooManyRequests, body)

	var rateErr *apierrors.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	require.Equal(t, 42*time.Second, rateErr.RetryAfter)
	require.Equal(t, "RATE_LIMITED", rateErr.Code)

	// A 429 is its own condition, not a generic *APIError.
	var apiErr *apierrors.APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestDecodeRateLimitWithoutHint(t *testing.T) {
	err := apierrors.Decode(http.StatusTooManyRequests, []byte(`{"error":{"code":"RATE_LIMITED","message":"Slow down"}}`))

	var rateErr *apierrors.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	require.Zero(t, rateErr.RetryAfter)
}

func TestIsNetwork(t *testing.T) {
	wrapped := &apierrors.NetworkError{Err: io.ErrUnexpectedEOF}

	require.True(t, apierrors.IsNetwork(wrapped))
	require.ErrorIs(t, wrapped, io.ErrUnexpectedEOF)
	require.False(t, apierrors.IsNetwork(apierrors.Decode(http.StatusInternalServerError, nil)))
	require.False(t, apierrors.IsNetwork(apierrors.ErrSessionExpired))
}
