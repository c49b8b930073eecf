package service

import (
	"github.com/flashdeck/flashdeck/internal/config"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/internal/store"
)

// Services bundles every business-logic service consumed by the HTTP layer.
type Services struct {
	AuthService      AuthService
	AccessService    AccessService
	CommandService   CommandService
	CategoryService  CategoryService
	FlashcardService FlashcardService
}

// NewServices wires all services to the given repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg, logger),
		AccessService:    NewAccessService(storages.UserRepository, logger),
		CommandService:   NewCommandService(storages.CommandRepository, logger),
		CategoryService:  NewCategoryService(storages.CategoryRepository, logger),
		FlashcardService: NewFlashcardService(storages.FlashcardRepository, storages.CategoryRepository, storages.ProgressRepository, logger),
	}
}
