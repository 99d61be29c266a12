package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/qrmenu/pkg/kv"
	"github.com/ghuser/qrmenu/pkg/logger"
)

func newTestStore() (*Store, *kv.MemoryStore) {
	backend := kv.NewMemoryStore()
	return NewStore(
		backend,
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		false,
	), backend
}

// carryCookies copies Set-Cookie headers from a recorder onto a fresh request.
func carryCookies(w *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStore_SaveAndReload(t *testing.T) {
	store, backend := newTestStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/editor", http.NoBody)
	s, err := store.Get(r, CookieName)
	require.NoError(t, err)
	assert.True(t, s.IsNew)
	s.Values["menuId"] = "menu_1700000000000_abc123xyz"
	require.NoError(t, s.Save(r, w))
	assert.Equal(t, 1, backend.Len())

	r2 := carryCookies(w, http.MethodGet, "/api/editor")
	s2, err := store.Get(r2, CookieName)
	require.NoError(t, err)
	assert.False(t, s2.IsNew)
	assert.Equal(t, "menu_1700000000000_abc123xyz", s2.Values["menuId"])
}

func TestStore_TamperedCookieStartsFresh(t *testing.T) {
	store, _ := newTestStore()

	r := httptest.NewRequest(http.MethodGet, "/api/editor", http.NoBody)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})

	s, err := store.Get(r, CookieName)
	require.NoError(t, err)
	assert.True(t, s.IsNew)
	assert.Empty(t, s.Values)
}

func TestStore_ExpiredBackendKeyStartsFresh(t *testing.T) {
	store, backend := newTestStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	s, _ := store.Get(r, CookieName)
	s.Values["menuId"] = "menu_x"
	require.NoError(t, s.Save(r, w))

	require.NoError(t, backend.Remove(context.Background(), sessionKeyPrefix+s.ID))

	s2, err := store.Get(carryCookies(w, http.MethodGet, "/"), CookieName)
	require.NoError(t, err)
	assert.True(t, s2.IsNew)
}

func TestStore_NegativeMaxAgeDeletes(t *testing.T) {
	store, backend := newTestStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	s, _ := store.Get(r, CookieName)
	s.Values["menuId"] = "menu_x"
	require.NoError(t, s.Save(r, w))
	require.Equal(t, 1, backend.Len())

	s.Options.MaxAge = -1
	require.NoError(t, s.Save(r, httptest.NewRecorder()))
	assert.Equal(t, 0, backend.Len())
}

func TestValues_KVRoundTripAcrossRequests(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	w := httptest.NewRecorder()
	v, err := Open(store, w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.NoError(t, err)
	assert.True(t, v.IsNew())

	_, ok, err := v.Get(ctx, "menuId")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, v.Set(ctx, "menuId", "menu_1"))

	w2 := httptest.NewRecorder()
	v2, err := Open(store, w2, carryCookies(w, http.MethodGet, "/"))
	require.NoError(t, err)
	got, ok, err := v2.Get(ctx, "menuId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "menu_1", got)

	require.NoError(t, v2.Remove(ctx, "menuId"))
	require.NoError(t, v2.Remove(ctx, "menuId"))

	v3, err := Open(store, httptest.NewRecorder(), carryCookies(w2, http.MethodGet, "/"))
	require.NoError(t, err)
	_, ok, _ = v3.Get(ctx, "menuId")
	assert.False(t, ok)
}

func TestMiddleware_InjectsValues(t *testing.T) {
	store, _ := newTestStore()

	var got *Values
	h := Middleware(store, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = FromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/editor", http.NoBody))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, got)
}

func TestMiddleware_InvalidCookieStoreCookieContinues(t *testing.T) {
	store := sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)

	called := false
	h := Middleware(store, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		v, err := FromContext(r.Context())
		require.NoError(t, err)
		assert.True(t, v.IsNew())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/editor", http.NoBody)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.True(t, called)
}

func TestFromContext_Missing(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

// flakyBackend fails Get on session keys while down is set.
type flakyBackend struct {
	*kv.MemoryStore
	down bool
}

func (f *flakyBackend) Get(ctx context.Context, key string) (string, bool, error) {
	if f.down && strings.HasPrefix(key, sessionKeyPrefix) {
		return "", false, errors.New("connection reset")
	}
	return f.MemoryStore.Get(ctx, key)
}

func TestStore_BackendFailureIsReturned(t *testing.T) {
	backend := &flakyBackend{MemoryStore: kv.NewMemoryStore()}
	store := NewStore(backend,
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		false,
	)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	s, err := store.Get(r, CookieName)
	require.NoError(t, err)
	s.Values["menuId"] = "menu_1"
	require.NoError(t, s.Save(r, w))
	liveID := s.ID

	backend.down = true
	s2, err := store.Get(carryCookies(w, http.MethodGet, "/"), CookieName)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, s2.ID, "an unreadable session must not keep its id")

	_, err = Open(store, httptest.NewRecorder(), carryCookies(w, http.MethodGet, "/"))
	require.ErrorIs(t, err, ErrUnavailable)

	backend.down = false
	raw, ok, err := backend.Get(context.Background(), sessionKeyPrefix+liveID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, raw)

	s3, err := store.Get(carryCookies(w, http.MethodGet, "/"), CookieName)
	require.NoError(t, err)
	assert.False(t, s3.IsNew)
	assert.Equal(t, "menu_1", s3.Values["menuId"])
}

func TestStore_UndecodablePayloadStartsFresh(t *testing.T) {
	store, backend := newTestStore()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	s, _ := store.Get(r, CookieName)
	s.Values["menuId"] = "menu_x"
	require.NoError(t, s.Save(r, w))
	require.NoError(t, backend.Set(context.Background(), sessionKeyPrefix+s.ID, "%%not-base64"))

	s2, err := store.Get(carryCookies(w, http.MethodGet, "/"), CookieName)
	require.NoError(t, err)
	assert.True(t, s2.IsNew)
	assert.Empty(t, s2.ID)
	assert.Empty(t, s2.Values)
}

func TestMiddleware_BackendFailureIs500(t *testing.T) {
	backend := &flakyBackend{MemoryStore: kv.NewMemoryStore()}
	store := NewStore(backend,
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		false,
	)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	s, _ := store.Get(r, CookieName)
	s.Values["menuId"] = "menu_1"
	require.NoError(t, s.Save(r, w))

	backend.down = true
	called := false
	h := Middleware(store, logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, carryCookies(w, http.MethodGet, "/api/editor"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, called)
	assert.Empty(t, rr.Result().Cookies())
}
