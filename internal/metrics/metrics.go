package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the token lifecycle core. Outcome labels: "success",
// "rejected" (definitive auth rejection), "network_error".
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budget_client_requests_total",
		Help: "The total number of API requests, by outcome.",
	}, []string{"outcome"})

	RequestRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "budget_client_request_retries_total",
		Help: "The total number of requests retried after a token refresh.",
	})

	RefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budget_client_refresh_total",
		Help: "The total number of token refresh calls, by outcome.",
	}, []string{"outcome"})

	RestorationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budget_client_session_restorations_total",
		Help: "The total number of startup session restoration attempts, by outcome.",
	}, []string{"outcome"})
)

const (
	OutcomeSuccess      = "success"
	OutcomeFailure      = "failure"
	OutcomeRejected     = "rejected"
	OutcomeNetworkError = "network_error"
)
