package store

import "github.com/flashdeck/flashdeck/internal/logger"

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	UserRepository      UserRepository
	CommandRepository   CommandRepository
	CategoryRepository  CategoryRepository
	FlashcardRepository FlashcardRepository
	ProgressRepository  ProgressRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		CommandRepository:   NewCommandRepository(db, logger),
		CategoryRepository:  NewCategoryRepository(db, logger),
		FlashcardRepository: NewFlashcardRepository(db, logger),
		ProgressRepository:  NewProgressRepository(db, logger),
	}
}
