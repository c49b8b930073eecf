// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/utils"
	"github.com/flashdeck/flashdeck/models"
	"github.com/justinas/nosurf"
)

type credentialsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.Username == nil {
		writeMessage(w, "No username provided.", http.StatusBadRequest)
		return
	}
	if req.Password == nil {
		writeMessage(w, "No password provided.", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, *req.Username, *req.Password, models.RolePublic); err != nil {
		log.Err(err).Msg("registration failed")
		respondError(w, err)
		return
	}

	// registration re-runs the full login flow with the submitted
	// credentials, so the session setup never has a second code path
	h.completeLogin(w, r, *req.Username, *req.Password)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.Username == nil {
		writeMessage(w, "No username provided.", http.StatusBadRequest)
		return
	}
	if req.Password == nil {
		writeMessage(w, "No password provided.", http.StatusBadRequest)
		return
	}

	h.completeLogin(w, r, *req.Username, *req.Password)
}

// completeLogin verifies credentials and binds the session to the user. The
// session token is regenerated inside LoginAs.
func (h *Handler) completeLogin(w http.ResponseWriter, r *http.Request, username, password string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		log.Err(err).Msg("login failed")
		respondError(w, err)
		return
	}

	if err := h.sessions.LoginAs(ctx, user.ID, user.Role); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session login failed")
		writeMessage(w, msgInternal, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user logged in")
	writeMessage(w, msgSuccess, http.StatusOK)
}

func (h *Handler) authenticated(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.AuthenticatedResponse{Authenticated: h.sessions.IsAuthenticated(r.Context())}, http.StatusOK)
}

func (h *Handler) role(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RoleResponse{Role: h.sessions.Role(r.Context())}, http.StatusOK)
}

func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.CSRFTokenResponse{CSRFToken: nosurf.Token(r)}, http.StatusOK)
}
