// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/flashdeck/flashdeck/internal/utils"
	"github.com/flashdeck/flashdeck/models"
)

// User-facing response messages. Clients match on these strings, so they are
// part of the API surface and must not be reworded casually.
const (
	msgSuccess            = "Success"
	msgInvalidJSON        = "Invalid JSON was passed."
	msgInvalidData        = "Invalid data provided."
	msgInvalidCredentials = "Credentials are invalid."
	msgUsernameTaken      = "Username already exists."
	msgLoginRequired      = "You must be logged in."
	msgForbidden          = "Insufficient permissions."
	msgCategoryMissing    = "Category does not exist."
	msgCategoryInUse      = "Category is in use."
	msgInternal           = "Internal server error."
	msgCSRFRejected       = "Invalid CSRF token."
)

// Per-resource confirmations, matching the texts clients already display.
const (
	msgCommandCreated   = "Command successfully created."
	msgCommandUpdated   = "Command successfully updated."
	msgCommandDeleted   = "Command successfully deleted."
	msgFlashcardUpdated = "Flashcard successfully updated."
	msgFlashcardDeleted = "Flashcard successfully deleted."
	msgCategoryCreated  = "Category successfully created."
	msgCategoryUpdated  = "Category successfully updated."
	msgCategoryDeleted  = "Category successfully deleted."
)

// writeMessage writes the uniform {"message": ...} envelope.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
