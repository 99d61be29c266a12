package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// CookieName names the editor session cookie.
const CookieName = "qrmenu_session"

// Values adapts one request's session to kv.Store. Writes save the session
// immediately, so they must happen before the response body is written.
// TTLs are ignored; session values live as long as the session.
type Values struct {
	r       *http.Request
	w       http.ResponseWriter
	session *sessions.Session
}

// Open loads (or starts) the editor session for r.
func Open(store sessions.Store, w http.ResponseWriter, r *http.Request) (*Values, error) {
	s, err := store.Get(r, CookieName)
	if s == nil || errors.Is(err, ErrUnavailable) {
		return nil, fmt.Errorf("open session: %w", err)
	}
	// gorilla returns a usable fresh session alongside decode errors.
	return &Values{r: r, w: w, session: s}, err
}

// IsNew reports whether the client had no valid session before this request.
func (v *Values) IsNew() bool {
	return v.session.IsNew
}

// Get returns the string value stored under key.
func (v *Values) Get(_ context.Context, key string) (string, bool, error) {
	s, ok := v.session.Values[key].(string)
	return s, ok, nil
}

// Set stores value under key and saves the session.
func (v *Values) Set(_ context.Context, key, value string) error {
	v.session.Values[key] = value
	return v.save()
}

// SetWithTTL is Set; the session MaxAge bounds every value.
func (v *Values) SetWithTTL(ctx context.Context, key, value string, _ time.Duration) error {
	return v.Set(ctx, key, value)
}

// Remove deletes key and saves the session.
func (v *Values) Remove(_ context.Context, key string) error {
	if _, ok := v.session.Values[key]; !ok {
		return nil
	}
	delete(v.session.Values, key)
	return v.save()
}

func (v *Values) save() error {
	if err := v.session.Save(v.r, v.w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const valuesKey contextKey = "session_values"

// ErrNoSession is returned when no session values exist in the request context.
var ErrNoSession = errors.New("session not found in context")

// FromContext returns the session values injected by Middleware.
func FromContext(ctx context.Context) (*Values, error) {
	v, ok := ctx.Value(valuesKey).(*Values)
	if !ok || v == nil {
		return nil, ErrNoSession
	}
	return v, nil
}

// WithValues returns a new context carrying v.
func WithValues(ctx context.Context, v *Values) context.Context {
	return context.WithValue(ctx, valuesKey, v)
}
