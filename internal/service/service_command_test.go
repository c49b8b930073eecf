package service

import (
	"context"
	"testing"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
	"github.com/flashdeck/flashdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_CreateCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to repository", func(t *testing.T) {
		var gotCmd, gotDesc string
		repo := &commandRepoStub{
			createCommand: func(ctx context.Context, command, description string) error {
				gotCmd, gotDesc = command, description
				return nil
			},
		}

		svc := NewCommandService(repo, logger.Nop())
		require.NoError(t, svc.CreateCommand(ctx, "ls", "list directory contents"))
		assert.Equal(t, "ls", gotCmd)
		assert.Equal(t, "list directory contents", gotDesc)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		svc := NewCommandService(&commandRepoStub{}, logger.Nop())
		assert.ErrorIs(t, svc.CreateCommand(ctx, "", "desc"), ErrInvalidDataProvided)
		assert.ErrorIs(t, svc.CreateCommand(ctx, "ls", ""), ErrInvalidDataProvided)
	})
}

func TestCommands_DeleteCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing affected surfaces", func(t *testing.T) {
		repo := &commandRepoStub{
			deleteCommand: func(ctx context.Context, id int64) error {
				return store.ErrNothingAffected
			},
		}

		svc := NewCommandService(repo, logger.Nop())
		assert.ErrorIs(t, svc.DeleteCommand(ctx, 404), store.ErrNothingAffected)
	})

	t.Run("zero id rejected", func(t *testing.T) {
		svc := NewCommandService(&commandRepoStub{}, logger.Nop())
		assert.ErrorIs(t, svc.DeleteCommand(ctx, 0), ErrInvalidDataProvided)
	})
}

func TestCategories_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("list passes rows through", func(t *testing.T) {
		repo := &categoryRepoStub{
			listCategories: func(ctx context.Context) ([]models.FlashcardCategory, error) {
				return []models.FlashcardCategory{{ID: 1, Name: "Verbs"}}, nil
			},
		}

		svc := NewCategoryService(repo, logger.Nop())
		categories, err := svc.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Verbs", categories[0].Name)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := NewCategoryService(&categoryRepoStub{}, logger.Nop())
		assert.ErrorIs(t, svc.CreateCategory(ctx, ""), ErrInvalidDataProvided)
		assert.ErrorIs(t, svc.UpdateCategory(ctx, models.FlashcardCategory{ID: 1}), ErrInvalidDataProvided)
	})
}
