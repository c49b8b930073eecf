// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/utils"
	"github.com/flashdeck/flashdeck/models"
)

type flashcardRequest struct {
	ID         *int64  `json:"id"`
	Word       *string `json:"word"`
	Definition *string `json:"definition"`
	CategoryID *int64  `json:"category_id"`
}

// listFlashcards branches on the session: an authenticated caller gets their
// own study progress rows, everyone else the public flashcard list.
func (h *Handler) listFlashcards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if userID, ok := h.sessions.UserID(ctx); ok && h.sessions.IsAuthenticated(ctx) {
		rows, err := h.services.FlashcardService.ListUserFlashcards(ctx, userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("listing user flashcards failed")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, rows, http.StatusOK)
		return
	}

	flashcards, err := h.services.FlashcardService.ListFlashcards(ctx)
	if err != nil {
		log.Err(err).Msg("listing flashcards failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, flashcards, http.StatusOK)
}

func (h *Handler) createFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req flashcardRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.Word == nil {
		writeMessage(w, "No word provided.", http.StatusBadRequest)
		return
	}
	if req.Definition == nil {
		writeMessage(w, "No definition provided.", http.StatusBadRequest)
		return
	}
	if req.CategoryID == nil {
		writeMessage(w, "No category_id provided.", http.StatusBadRequest)
		return
	}

	card := models.Flashcard{Word: *req.Word, Definition: *req.Definition, CategoryID: *req.CategoryID}
	created, err := h.services.FlashcardService.CreateFlashcard(ctx, card)
	if err != nil {
		log.Err(err).Msg("creating flashcard failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req flashcardRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		writeMessage(w, "No id provided.", http.StatusBadRequest)
		return
	}
	if req.Word == nil {
		writeMessage(w, "No word provided.", http.StatusBadRequest)
		return
	}
	if req.Definition == nil {
		writeMessage(w, "No definition provided.", http.StatusBadRequest)
		return
	}
	if req.CategoryID == nil {
		writeMessage(w, "No category_id provided.", http.StatusBadRequest)
		return
	}

	card := models.Flashcard{ID: *req.ID, Word: *req.Word, Definition: *req.Definition, CategoryID: *req.CategoryID}
	if err := h.services.FlashcardService.UpdateFlashcard(ctx, card); err != nil {
		log.Err(err).Int64("id", card.ID).Msg("updating flashcard failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgFlashcardUpdated, http.StatusOK)
}

func (h *Handler) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req flashcardRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		writeMessage(w, "No id provided.", http.StatusBadRequest)
		return
	}

	if err := h.services.FlashcardService.DeleteFlashcard(ctx, *req.ID); err != nil {
		log.Err(err).Int64("id", *req.ID).Msg("deleting flashcard failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgFlashcardDeleted, http.StatusOK)
}
