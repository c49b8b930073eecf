// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/utils"
	"github.com/flashdeck/flashdeck/models"
)

type categoryRequest struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categories, err := h.services.CategoryService.ListCategories(ctx)
	if err != nil {
		log.Err(err).Msg("listing categories failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req categoryRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.Name == nil {
		writeMessage(w, "No name provided.", http.StatusBadRequest)
		return
	}

	if err := h.services.CategoryService.CreateCategory(ctx, *req.Name); err != nil {
		log.Err(err).Msg("creating category failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgCategoryCreated, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req categoryRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		writeMessage(w, "No id provided.", http.StatusBadRequest)
		return
	}
	if req.Name == nil {
		writeMessage(w, "No name provided.", http.StatusBadRequest)
		return
	}

	category := models.FlashcardCategory{ID: *req.ID, Name: *req.Name}
	if err := h.services.CategoryService.UpdateCategory(ctx, category); err != nil {
		log.Err(err).Int64("id", category.ID).Msg("updating category failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgCategoryUpdated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req categoryRequest
	if message, ok := decodeBody(r, &req); !ok {
		writeMessage(w, message, http.StatusBadRequest)
		return
	}
	if req.ID == nil {
		writeMessage(w, "No id provided.", http.StatusBadRequest)
		return
	}

	if err := h.services.CategoryService.DeleteCategory(ctx, *req.ID); err != nil {
		log.Err(err).Int64("id", *req.ID).Msg("deleting category failed")
		respondError(w, err)
		return
	}

	writeMessage(w, msgCategoryDeleted, http.StatusOK)
}
