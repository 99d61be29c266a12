// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/qrmenu/pkg/httpx"
	menudomain "github.com/ghuser/qrmenu/services/menu/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

// WriteSafeError is WriteError with 5xx messages hidden in production.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, menudomain.ErrMenuNotFound),
		errors.Is(err, menudomain.ErrMenuItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, menudomain.ErrInvalidTransition),
		errors.Is(err, menudomain.ErrEmptyMenu):
		return http.StatusConflict // 409
	case errors.Is(err, menudomain.ErrInvalidMenuItem),
		errors.Is(err, menudomain.ErrInvalidRestaurantName):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, menudomain.ErrEncodeFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
