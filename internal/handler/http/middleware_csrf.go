package http

import (
	"net/http"

	"github.com/justinas/nosurf"
)

// withCSRF enforces the double-submit CSRF token on every mutating request.
// Clients fetch the token from GET /csrf-token and echo it back in the
// X-CSRF-Token header.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	csrf := nosurf.New(next)
	csrf.SetFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, msgCSRFRejected, http.StatusForbidden)
	}))
	return csrf
}
