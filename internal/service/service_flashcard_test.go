package service

import (
	"context"
	"errors"
	"testing"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
	"github.com/flashdeck/flashdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcards_CreateFlashcard(t *testing.T) {
	ctx := context.Background()
	card := models.Flashcard{Word: "goroutine", Definition: "a lightweight thread", CategoryID: 3}

	t.Run("creates when category exists", func(t *testing.T) {
		categories := &categoryRepoStub{
			categoryExists: func(ctx context.Context, id int64) (bool, error) {
				assert.Equal(t, int64(3), id)
				return true, nil
			},
		}
		repo := &flashcardRepoStub{
			createFlashcard: func(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error) {
				flashcard.ID = 11
				return flashcard, nil
			},
		}

		svc := NewFlashcardService(repo, categories, &progressRepoStub{}, logger.Nop())
		created, err := svc.CreateFlashcard(ctx, card)
		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
	})

	t.Run("missing category", func(t *testing.T) {
		categories := &categoryRepoStub{
			categoryExists: func(ctx context.Context, id int64) (bool, error) {
				return false, nil
			},
		}

		svc := NewFlashcardService(&flashcardRepoStub{}, categories, &progressRepoStub{}, logger.Nop())
		_, err := svc.CreateFlashcard(ctx, card)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		svc := NewFlashcardService(&flashcardRepoStub{}, &categoryRepoStub{}, &progressRepoStub{}, logger.Nop())

		_, err := svc.CreateFlashcard(ctx, models.Flashcard{Definition: "d", CategoryID: 1})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)

		_, err = svc.CreateFlashcard(ctx, models.Flashcard{Word: "w", Definition: "d"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestFlashcards_ListUserFlashcards(t *testing.T) {
	ctx := context.Background()

	t.Run("returns progress rows", func(t *testing.T) {
		progress := &progressRepoStub{
			listUserFlashcards: func(ctx context.Context, userID int64) ([]models.UserFlashcard, error) {
				assert.Equal(t, int64(5), userID)
				return []models.UserFlashcard{
					{UserID: 5, FlashcardID: 1, CategoryID: 2, Status: models.StatusNeedsStudying},
				}, nil
			},
		}

		svc := NewFlashcardService(&flashcardRepoStub{}, &categoryRepoStub{}, progress, logger.Nop())
		rows, err := svc.ListUserFlashcards(ctx, 5)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, models.StatusNeedsStudying, rows[0].Status)
	})

	t.Run("repository failure wrapped", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		progress := &progressRepoStub{
			listUserFlashcards: func(ctx context.Context, userID int64) ([]models.UserFlashcard, error) {
				return nil, dbErr
			},
		}

		svc := NewFlashcardService(&flashcardRepoStub{}, &categoryRepoStub{}, progress, logger.Nop())
		_, err := svc.ListUserFlashcards(ctx, 5)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("zero user id rejected", func(t *testing.T) {
		svc := NewFlashcardService(&flashcardRepoStub{}, &categoryRepoStub{}, &progressRepoStub{}, logger.Nop())
		_, err := svc.ListUserFlashcards(ctx, 0)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestFlashcards_UpdateFlashcard(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to repository", func(t *testing.T) {
		var updated models.Flashcard
		repo := &flashcardRepoStub{
			updateFlashcard: func(ctx context.Context, flashcard models.Flashcard) error {
				updated = flashcard
				return nil
			},
		}

		svc := NewFlashcardService(repo, &categoryRepoStub{}, &progressRepoStub{}, logger.Nop())
		err := svc.UpdateFlashcard(ctx, models.Flashcard{ID: 4, Word: "w", Definition: "d", CategoryID: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), updated.ID)
	})

	t.Run("nothing affected surfaces", func(t *testing.T) {
		repo := &flashcardRepoStub{
			updateFlashcard: func(ctx context.Context, flashcard models.Flashcard) error {
				return store.ErrNothingAffected
			},
		}

		svc := NewFlashcardService(repo, &categoryRepoStub{}, &progressRepoStub{}, logger.Nop())
		err := svc.UpdateFlashcard(ctx, models.Flashcard{ID: 404, Word: "w", Definition: "d", CategoryID: 2})
		assert.ErrorIs(t, err, store.ErrNothingAffected)
	})
}
