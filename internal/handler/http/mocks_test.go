package http

import (
	"context"
	"net/http"

	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/service"
	"github.com/flashdeck/flashdeck/internal/session"
	"github.com/flashdeck/flashdeck/models"
)

// Func-field service mocks. Each test assigns only the methods it expects to
// be called.

type mockAuthService struct {
	registerFn func(ctx context.Context, username, password, role string) (models.User, error)
	loginFn    func(ctx context.Context, username, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password, role string) (models.User, error) {
	return m.registerFn(ctx, username, password, role)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

type mockAccessService struct {
	isAdminFn func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockAccessService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return m.isAdminFn(ctx, userID)
}

type mockCommandService struct {
	createFn func(ctx context.Context, command, description string) error
	listFn   func(ctx context.Context) ([]models.Command, error)
	updateFn func(ctx context.Context, cmd models.Command) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCommandService) CreateCommand(ctx context.Context, command, description string) error {
	return m.createFn(ctx, command, description)
}

func (m *mockCommandService) ListCommands(ctx context.Context) ([]models.Command, error) {
	return m.listFn(ctx)
}

func (m *mockCommandService) UpdateCommand(ctx context.Context, cmd models.Command) error {
	return m.updateFn(ctx, cmd)
}

func (m *mockCommandService) DeleteCommand(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCategoryService struct {
	createFn func(ctx context.Context, name string) error
	listFn   func(ctx context.Context) ([]models.FlashcardCategory, error)
	updateFn func(ctx context.Context, category models.FlashcardCategory) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, name string) error {
	return m.createFn(ctx, name)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]models.FlashcardCategory, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, category models.FlashcardCategory) error {
	return m.updateFn(ctx, category)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockFlashcardService struct {
	createFn      func(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error)
	listFn        func(ctx context.Context) ([]models.Flashcard, error)
	listForUserFn func(ctx context.Context, userID int64) ([]models.UserFlashcard, error)
	updateFn      func(ctx context.Context, flashcard models.Flashcard) error
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockFlashcardService) CreateFlashcard(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error) {
	return m.createFn(ctx, flashcard)
}

func (m *mockFlashcardService) ListFlashcards(ctx context.Context) ([]models.Flashcard, error) {
	return m.listFn(ctx)
}

func (m *mockFlashcardService) ListUserFlashcards(ctx context.Context, userID int64) ([]models.UserFlashcard, error) {
	return m.listForUserFn(ctx, userID)
}

func (m *mockFlashcardService) UpdateFlashcard(ctx context.Context, flashcard models.Flashcard) error {
	return m.updateFn(ctx, flashcard)
}

func (m *mockFlashcardService) DeleteFlashcard(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// newTestHandler builds a Handler around the given mocks with an in-memory
// session store. Nil mocks are fine for handlers that never touch them.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, session.NewMemoryManager(), config.Server{RateLimit: 100}, logger.Nop())
}

// withSession wraps a handler in the session middleware so the session is
// loaded into the request context, the way the full router does.
func (h *Handler) withSessionForTest(next http.Handler) http.Handler {
	return h.sessions.LoadAndSave(next)
}
