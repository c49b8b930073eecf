// Copyright 2026 Flashdeck Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
	"github.com/flashdeck/flashdeck/models"
)

// Flashcards implements FlashcardService.
type Flashcards struct {
	repo       store.FlashcardRepository
	categories store.CategoryRepository
	progress   store.ProgressRepository
	log        *logger.Logger
}

func NewFlashcardService(repo store.FlashcardRepository, categories store.CategoryRepository, progress store.ProgressRepository, log *logger.Logger) *Flashcards {
	return &Flashcards{repo: repo, categories: categories, progress: progress, log: log}
}

// CreateFlashcard verifies the target category exists before inserting. The
// insert's FK mapping still catches a category deleted between the check and
// the write.
func (f *Flashcards) CreateFlashcard(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error) {
	if flashcard.Word == "" || flashcard.Definition == "" || flashcard.CategoryID == 0 {
		return models.Flashcard{}, ErrInvalidDataProvided
	}

	exists, err := f.categories.CategoryExists(ctx, flashcard.CategoryID)
	if err != nil {
		f.log.Err(err).Str("func", "Flashcards.CreateFlashcard").Msg("category existence check failed")
		return models.Flashcard{}, fmt.Errorf("checking category: %w", err)
	}
	if !exists {
		return models.Flashcard{}, store.ErrCategoryNotFound
	}

	created, err := f.repo.CreateFlashcard(ctx, flashcard)
	if err != nil {
		f.log.Err(err).Str("func", "Flashcards.CreateFlashcard").Msg("flashcard creation failed")
		return models.Flashcard{}, err
	}

	return created, nil
}

func (f *Flashcards) ListFlashcards(ctx context.Context) ([]models.Flashcard, error) {
	flashcards, err := f.repo.ListFlashcards(ctx)
	if err != nil {
		f.log.Err(err).Str("func", "Flashcards.ListFlashcards").Msg("flashcard listing failed")
		return nil, fmt.Errorf("listing flashcards: %w", err)
	}

	return flashcards, nil
}

// ListUserFlashcards returns the study progress rows for one user, one per
// flashcard the user has a seeded record for.
func (f *Flashcards) ListUserFlashcards(ctx context.Context, userID int64) ([]models.UserFlashcard, error) {
	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	rows, err := f.progress.ListUserFlashcards(ctx, userID)
	if err != nil {
		f.log.Err(err).Str("func", "Flashcards.ListUserFlashcards").Int64("user_id", userID).Msg("progress listing failed")
		return nil, fmt.Errorf("listing user flashcards: %w", err)
	}

	return rows, nil
}

func (f *Flashcards) UpdateFlashcard(ctx context.Context, flashcard models.Flashcard) error {
	if flashcard.ID == 0 || flashcard.Word == "" || flashcard.Definition == "" || flashcard.CategoryID == 0 {
		return ErrInvalidDataProvided
	}

	if err := f.repo.UpdateFlashcard(ctx, flashcard); err != nil {
		f.log.Err(err).Str("func", "Flashcards.UpdateFlashcard").Int64("id", flashcard.ID).Msg("flashcard update failed")
		return fmt.Errorf("updating flashcard: %w", err)
	}

	return nil
}

func (f *Flashcards) DeleteFlashcard(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrInvalidDataProvided
	}

	if err := f.repo.DeleteFlashcard(ctx, id); err != nil {
		f.log.Err(err).Str("func", "Flashcards.DeleteFlashcard").Int64("id", id).Msg("flashcard deletion failed")
		return fmt.Errorf("deleting flashcard: %w", err)
	}

	return nil
}
