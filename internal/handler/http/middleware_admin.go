// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/flashdeck/flashdeck/internal/logger"
)

// requireAdmin guards mutating routes. A request without a logged-in session
// gets 401; a logged-in user whose stored role is not admin gets 403. The two
// cases are deliberately distinct on the wire.
//
// The role is re-read from the database on every guarded request rather than
// trusted from the session copy.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := h.sessions.UserID(ctx)
		if !ok {
			writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
			return
		}

		isAdmin, err := h.services.AccessService.IsAdmin(ctx, userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("admin check failed")
			writeMessage(w, msgInternal, http.StatusInternalServerError)
			return
		}
		if !isAdmin {
			writeMessage(w, msgForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
