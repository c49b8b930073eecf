package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/models"
	"github.com/jackc/pgerrcode"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory inserts a flashcard category.
func (r *categoryRepository) CreateCategory(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createCategory, name)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: insert failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}

// ListCategories returns every category ordered by id ascending. An empty
// table yields an empty slice, not an error.
func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.FlashcardCategory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.FlashcardCategory, 0, 50)
	for rows.Next() {
		var category models.FlashcardCategory
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// UpdateCategory renames the category with the given id.
//
// Returns [ErrNothingAffected] when no row matches.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.FlashcardCategory) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(category.TableName()).
		Set("name", category.Name).
		Where(sq.Eq{"id": category.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error: building query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Int64("id", category.ID).Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}

// DeleteCategory removes the category with the given id.
//
// Returns [ErrNothingAffected] when no row matches, and [ErrCategoryInUse]
// when flashcards or progress rows still reference the category. Those
// references deliberately do not cascade; emptying a category is an explicit
// admin action.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategory, id)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("id", id).Msg("error: delete failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrCategoryInUse
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return checkAffected(result)
}

// CategoryExists reports whether a category row exists with the given id.
func (r *categoryRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, categoryExists, id)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CategoryExists").Int64("id", id).Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}
