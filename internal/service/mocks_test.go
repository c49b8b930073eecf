package service

import (
	"context"

	"github.com/flashdeck/flashdeck/models"
)

// Func-field repository stubs. Each test assigns only the methods it expects
// to be called; an unexpected call panics on the nil func.

type userRepoStub struct {
	createUser       func(ctx context.Context, username, passwordHash, role string) (models.User, error)
	usernameExists   func(ctx context.Context, username string) (bool, error)
	findIDByUsername func(ctx context.Context, username string) (int64, error)
	getPasswordHash  func(ctx context.Context, userID int64) (string, error)
	getRole          func(ctx context.Context, userID int64) (string, error)
	isAdmin          func(ctx context.Context, userID int64) (bool, error)
}

func (s *userRepoStub) CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error) {
	return s.createUser(ctx, username, passwordHash, role)
}

func (s *userRepoStub) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.usernameExists(ctx, username)
}

func (s *userRepoStub) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	return s.findIDByUsername(ctx, username)
}

func (s *userRepoStub) GetPasswordHash(ctx context.Context, userID int64) (string, error) {
	return s.getPasswordHash(ctx, userID)
}

func (s *userRepoStub) GetRole(ctx context.Context, userID int64) (string, error) {
	return s.getRole(ctx, userID)
}

func (s *userRepoStub) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return s.isAdmin(ctx, userID)
}

type commandRepoStub struct {
	createCommand func(ctx context.Context, command, description string) error
	listCommands  func(ctx context.Context) ([]models.Command, error)
	updateCommand func(ctx context.Context, cmd models.Command) error
	deleteCommand func(ctx context.Context, id int64) error
}

func (s *commandRepoStub) CreateCommand(ctx context.Context, command, description string) error {
	return s.createCommand(ctx, command, description)
}

func (s *commandRepoStub) ListCommands(ctx context.Context) ([]models.Command, error) {
	return s.listCommands(ctx)
}

func (s *commandRepoStub) UpdateCommand(ctx context.Context, cmd models.Command) error {
	return s.updateCommand(ctx, cmd)
}

func (s *commandRepoStub) DeleteCommand(ctx context.Context, id int64) error {
	return s.deleteCommand(ctx, id)
}

type categoryRepoStub struct {
	createCategory func(ctx context.Context, name string) error
	listCategories func(ctx context.Context) ([]models.FlashcardCategory, error)
	updateCategory func(ctx context.Context, category models.FlashcardCategory) error
	deleteCategory func(ctx context.Context, id int64) error
	categoryExists func(ctx context.Context, id int64) (bool, error)
}

func (s *categoryRepoStub) CreateCategory(ctx context.Context, name string) error {
	return s.createCategory(ctx, name)
}

func (s *categoryRepoStub) ListCategories(ctx context.Context) ([]models.FlashcardCategory, error) {
	return s.listCategories(ctx)
}

func (s *categoryRepoStub) UpdateCategory(ctx context.Context, category models.FlashcardCategory) error {
	return s.updateCategory(ctx, category)
}

func (s *categoryRepoStub) DeleteCategory(ctx context.Context, id int64) error {
	return s.deleteCategory(ctx, id)
}

func (s *categoryRepoStub) CategoryExists(ctx context.Context, id int64) (bool, error) {
	return s.categoryExists(ctx, id)
}

type flashcardRepoStub struct {
	createFlashcard func(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error)
	listFlashcards  func(ctx context.Context) ([]models.Flashcard, error)
	updateFlashcard func(ctx context.Context, flashcard models.Flashcard) error
	deleteFlashcard func(ctx context.Context, id int64) error
}

func (s *flashcardRepoStub) CreateFlashcard(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error) {
	return s.createFlashcard(ctx, flashcard)
}

func (s *flashcardRepoStub) ListFlashcards(ctx context.Context) ([]models.Flashcard, error) {
	return s.listFlashcards(ctx)
}

func (s *flashcardRepoStub) UpdateFlashcard(ctx context.Context, flashcard models.Flashcard) error {
	return s.updateFlashcard(ctx, flashcard)
}

func (s *flashcardRepoStub) DeleteFlashcard(ctx context.Context, id int64) error {
	return s.deleteFlashcard(ctx, id)
}

type progressRepoStub struct {
	listUserFlashcards func(ctx context.Context, userID int64) ([]models.UserFlashcard, error)
}

func (s *progressRepoStub) ListUserFlashcards(ctx context.Context, userID int64) ([]models.UserFlashcard, error) {
	return s.listUserFlashcards(ctx, userID)
}
