package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Errors produced by the transport and session layers. Callers match them
// with errors.Is / errors.As.
var (
	// ErrSessionExpired tags a request that failed because the refresh call
	// was definitively rejected. The session has already been cleared and a
	// login redirect issued when this error is returned.
	ErrSessionExpired = errors.New("session expired")

	// ErrRestorationInFlight tags a request that received a 401 while a
	// startup session restoration was still running. The request is failed
	// immediately rather than racing a second refresh.
	ErrRestorationInFlight = errors.New("session restoration in flight")
)

// FallbackMessage is shown when the backend error body cannot be decoded.
const FallbackMessage = "Something went wrong. Please try again."

// APIError is the structured error returned by the backend as
// {"error": {"code": ..., "message": ...}}, decoded once at the transport
// boundary.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// NetworkError wraps a transport-level failure (timeout, connection refused,
// DNS). It is recoverable-looking but indistinguishable from token
// invalidation without the server's confirmation.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RateLimitError is returned for 429 responses that carry a retryAfter hint
// (resend-confirmation email). It is a distinct condition, not a generic
// failure.
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s: %s", e.RetryAfter, e.Message)
}

// errorBody mirrors the backend error envelope. retryAfter (seconds) rides
// alongside the envelope on 429 responses.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RetryAfter int `json:"retryAfter"`
}

// Decode parses a non-2xx response body into a tagged error. Unknown or
// malformed bodies fall back to a generic message so the caller always gets
// something presentable.
func Decode(status int, body []byte) error {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	apiErr := APIError{
		Status:  status,
		Code:    parsed.Error.Code,
		Message: parsed.Error.Message,
	}
	if apiErr.Code == "" {
		apiErr.Code = "UNKNOWN"
	}
	if apiErr.Message == "" {
		apiErr.Message = FallbackMessage
	}

	if status == http.StatusTooManyRequests {
		return &RateLimitError{
			APIError:   apiErr,
			RetryAfter: time.Duration(parsed.RetryAfter) * time.Second,
		}
	}
	return &apiErr
}

// IsNetwork reports whether err is a transport-level failure rather than a
// definitive server response.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
