package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/qrmenu/pkg/httpx"
	"github.com/ghuser/qrmenu/pkg/logger"
)

// Middleware is a chi middleware that attaches the client's editor session to
// the request context. Editors are anonymous: a missing or tampered cookie
// starts a fresh session instead of rejecting the request.
//
// After this middleware, handlers can call session.FromContext(r.Context()).
func Middleware(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values, err := Open(store, w, r)
			if values == nil {
				log.ErrorContext(r.Context(), "open session failed", "error", err)
				httpx.JSONError(w, http.StatusInternalServerError, "session unavailable")
				return
			}
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie, starting fresh session", "error", err)
			}

			next.ServeHTTP(w, r.WithContext(WithValues(r.Context(), values)))
		})
	}
}
