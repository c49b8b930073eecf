// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/utils"
	"github.com/flashdeck/flashdeck/models"
)

type commandRequest struct {
	ID          *int64  `json:"id"`
	Command     *string `json:"command"`
	Description *string `json:"description"`
}

func (h *Handler) listCommands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	commands, err := h.services.CommandService.ListCommands(ctx)
	if err != nil {
		log.Err(err).Msg("listing commands failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, commands, http.StatusOK)
}

func (h *Handler) createCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req commandRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.Command == nil {
		writeMessage(w, "No command provided.", http.StatusBadRequest)
		return
	}
	if req.Description == nil {
		writeMessage(w, "No description provided.", http.StatusBadRequest)
		return
	}

	if err := h.services.CommandService.CreateCommand(ctx, *req.Command, *req.Description); err != nil {
		log.Err(err).Msg("creating command failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgCommandCreated, http.StatusCreated)
}

func (h *Handler) updateCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req commandRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		writeMessage(w, "No id provided.", http.StatusBadRequest)
		return
	}
	if req.Command == nil {
		writeMessage(w, "No command provided.", http.StatusBadRequest)
		return
	}
	if req.Description == nil {
		writeMessage(w, "No description provided.", http.StatusBadRequest)
		return
	}

	cmd := models.Command{ID: *req.ID, Command: *req.Command, Description: *req.Description}
	if err := h.services.CommandService.UpdateCommand(ctx, cmd); err != nil {
		log.Err(err).Int64("id", cmd.ID).Msg("updating command failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgCommandUpdated, http.StatusOK)
}

func (h *Handler) deleteCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req commandRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		writeMessage(w, "No id provided.", http.StatusBadRequest)
		return
	}

	if err := h.services.CommandService.DeleteCommand(ctx, *req.ID); err != nil {
		log.Err(err).Int64("id", *req.ID).Msg("deleting command failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgCommandDeleted, http.StatusOK)
}
