package telemetry

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/qrmenu/pkg/config"
)

// inlineMenuPlaceholder replaces legacy ?data= menus in reported query strings.
const inlineMenuPlaceholder = "[inline menu]"

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
// Events are scrubbed by scrubEvent before they leave the process.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: 0.2,
		Tags:             map[string]string{"store_backend": cfg.StoreBackend},
		BeforeSend:       scrubEvent,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// scrubEvent drops the editor session cookie, which identifies the client's
// menu, and collapses inline menu payloads that would bloat every event from
// a legacy link.
func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	req := event.Request
	if req == nil {
		return event
	}
	req.Cookies = ""
	delete(req.Headers, "Cookie")

	if req.QueryString == "" {
		return event
	}
	q, err := url.ParseQuery(req.QueryString)
	if err != nil {
		req.QueryString = ""
		return event
	}
	if q.Has("data") {
		q.Set("data", inlineMenuPlaceholder)
		req.QueryString = q.Encode()
	}
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
