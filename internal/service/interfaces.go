package service

import (
	"context"

	"github.com/flashdeck/flashdeck/models"
)

// AuthService orchestrates registration and login.
type AuthService interface {
	// Register creates a user account with the given role and seeds its
	// study progress. It does not authenticate; callers re-run Login with
	// the same credentials so the hash-compare path is exercised uniformly.
	Register(ctx context.Context, username, password, role string) (models.User, error)

	// Login verifies credentials and returns the matched user (id,
	// username, role). Both an unknown username and a wrong password
	// surface as ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.User, error)
}

// AccessService answers authorization questions about existing users.
type AccessService interface {
	// IsAdmin reports whether a user row exists with the given id and the
	// admin role.
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// CommandService handles CRUD for command reference records.
type CommandService interface {
	CreateCommand(ctx context.Context, command, description string) error
	ListCommands(ctx context.Context) ([]models.Command, error)
	UpdateCommand(ctx context.Context, cmd models.Command) error
	DeleteCommand(ctx context.Context, id int64) error
}

// CategoryService handles CRUD for flashcard categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) error
	ListCategories(ctx context.Context) ([]models.FlashcardCategory, error)
	UpdateCategory(ctx context.Context, category models.FlashcardCategory) error
	DeleteCategory(ctx context.Context, id int64) error
}

// FlashcardService handles CRUD for flashcards and per-user progress reads.
type FlashcardService interface {
	CreateFlashcard(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error)
	ListFlashcards(ctx context.Context) ([]models.Flashcard, error)
	ListUserFlashcards(ctx context.Context, userID int64) ([]models.UserFlashcard, error)
	UpdateFlashcard(ctx context.Context, flashcard models.Flashcard) error
	DeleteFlashcard(ctx context.Context, id int64) error
}
