package store

import (
	"context"

	"github.com/flashdeck/flashdeck/models"
)

// UserRepository handles user account persistence and lookups.
//
// The login flow intentionally performs its lookups as separate ordered
// round-trips (id, then password hash, then role); later statements depend
// on the results of earlier ones.
type UserRepository interface {
	// CreateUser inserts a new user and seeds one study progress row per
	// existing flashcard, all within a single transaction.
	CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error)

	UsernameExists(ctx context.Context, username string) (bool, error)
	FindIDByUsername(ctx context.Context, username string) (int64, error)
	GetPasswordHash(ctx context.Context, userID int64) (string, error)
	GetRole(ctx context.Context, userID int64) (string, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// CommandRepository handles CRUD for the commands reference table.
type CommandRepository interface {
	CreateCommand(ctx context.Context, command, description string) error
	ListCommands(ctx context.Context) ([]models.Command, error)
	UpdateCommand(ctx context.Context, cmd models.Command) error
	DeleteCommand(ctx context.Context, id int64) error
}

// CategoryRepository handles CRUD for flashcard categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, name string) error
	ListCategories(ctx context.Context) ([]models.FlashcardCategory, error)
	UpdateCategory(ctx context.Context, category models.FlashcardCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

// FlashcardRepository handles CRUD for flashcards.
type FlashcardRepository interface {
	// CreateFlashcard inserts a flashcard and fans out one study progress
	// row per existing user, all within a single transaction.
	CreateFlashcard(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error)

	ListFlashcards(ctx context.Context) ([]models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, flashcard models.Flashcard) error
	DeleteFlashcard(ctx context.Context, id int64) error
}

// ProgressRepository reads per-user study progress records.
type ProgressRepository interface {
	ListUserFlashcards(ctx context.Context, userID int64) ([]models.UserFlashcard, error)
}
