// Package session identifies editor clients with a signed cookie and exposes
// each client's session values as a kv.Store.
//
// That client-scoped store is where the editor's stable menu identifier lives,
// so a client keeps editing (and sharing) the same menu across requests.
//
// Session keys should be 32 or 64 bytes for HMAC authentication,
// and 16, 24, or 32 bytes for AES encryption. Production deployments
// must use cryptographically random keys generated with:
//
//	openssl rand -base64 32
package session

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/base64"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/ghuser/qrmenu/pkg/kv"
)

const sessionKeyPrefix = "session:"

// ErrUnavailable is returned when the session backend cannot be read.
var ErrUnavailable = errors.New("session store unavailable")

// Store is a sessions.Store that keeps session values server-side in a kv.Store.
// Only an encrypted session ID travels in the client cookie (HttpOnly, Secure in
// production, SameSite Lax).
//
// Keys: "session:<id>" with TTL equal to the session MaxAge.
// Values are gob-encoded, then base64 so they fit a string store.
type Store struct {
	backend kv.Store
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewStore creates a kv-backed session store.
//
// Parameters:
//   - backend: the menu kv.Store (Redis or memory)
//   - authKey: 32 or 64 bytes for HMAC authentication (verifies cookie integrity)
//   - encryptionKey: 16, 24, or 32 bytes for AES encryption (encrypts session ID cookie)
//   - secureCookie: set true in production (HTTPS only); false for localhost dev
//
// Sessions last 30 days so a restaurant keeps its menu identifier between visits.
func NewStore(backend kv.Store, authKey, encryptionKey []byte, secureCookie bool) *Store {
	return &Store{
		backend: kv.Prefixed(backend, sessionKeyPrefix),
		codecs:  securecookie.CodecsFromPairs(authKey, encryptionKey),
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   86400 * 30,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns a session for the given name, loading from the backend if a valid
// session cookie exists.
func (s *Store) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New creates a session. If a valid cookie exists, it decodes the session ID
// and loads data from the backend. A missing, expired or invalid cookie yields
// a fresh session with a new ID. A backend failure returns ErrUnavailable
// alongside an ID-less session, so saving it can never overwrite the live
// session that could not be read.
func (s *Store) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil // no cookie → new session, no error
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil // invalid/tampered/expired cookie → new session
	}

	found, err := s.load(r.Context(), id, session)
	if err != nil {
		return session, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !found {
		return session, nil // key missing, expired or unreadable → new session
	}
	session.ID = id
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes the encrypted session cookie.
// If MaxAge < 0, the session and its backend key are deleted.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			_ = s.backend.Remove(r.Context(), session.ID)
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
			"=",
		)
	}

	if err := s.save(r.Context(), session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *Store) save(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if err := s.backend.SetWithTTL(ctx, session.ID, encoded, ttl); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// load reads the values stored under id into session. It reports false when
// the key is absent or its payload cannot be decoded; err is reserved for
// backend failures.
func (s *Store) load(ctx context.Context, id string, session *sessions.Session) (bool, error) {
	encoded, ok, err := s.backend.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}
	if !ok {
		return false, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, nil
	}
	values := make(map[any]any)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return false, nil
	}
	session.Values = values
	return true, nil
}
