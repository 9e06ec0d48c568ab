package transport

import (
	"net/url"

	"github.com/rs/zerolog"
)

// Notifier receives user-facing error messages, the toast analog. The
// embedding application decides how to surface them.
type Notifier interface {
	Error(message string)
}

// Navigator performs forced navigation: to the login entry point on session
// expiry, and to the confirm-email interstitial when a destination requires
// a confirmed address.
type Navigator interface {
	NavigateToLogin(query url.Values)
	NavigateToConfirmEmail()
}

// NewLogNotifier returns a Notifier that logs messages. The default for
// headless embedders.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	return logNotifier{log: logger}
}

type logNotifier struct {
	log zerolog.Logger
}

func (n logNotifier) Error(message string) {
	n.log.Error().Msg(message)
}

// NewLogNavigator returns a Navigator that only records where it would have
// navigated.
func NewLogNavigator(logger zerolog.Logger) Navigator {
	return logNavigator{log: logger}
}

type logNavigator struct {
	log zerolog.Logger
}

func (n logNavigator) NavigateToLogin(query url.Values) {
	n.log.Info().Str("query", query.Encode()).Msg("navigate to login")
}

func (n logNavigator) NavigateToConfirmEmail() {
	n.log.Info().Msg("navigate to confirm email")
}
