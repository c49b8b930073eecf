package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/models"
	"github.com/jackc/pgerrcode"
)

// flashcardRepository is the PostgreSQL-backed implementation of
// [FlashcardRepository].
type flashcardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFlashcardRepository constructs a [FlashcardRepository] backed by the
// provided database connection and logger.
func NewFlashcardRepository(db *DB, logger *logger.Logger) FlashcardRepository {
	logger.Debug().Msg("creating flashcard repository")
	return &flashcardRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFlashcard inserts a flashcard and fans out one study progress row to
// every existing user, each starting at "Needs studying".
//
// The insert and the fan-out run inside one transaction: a crash between
// them can never leave a flashcard visible to some users and not others.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on category_id →
//     [ErrCategoryNotFound]. Callers validate the category beforehand; this
//     closes the race with a concurrent category delete.
//   - Any other driver-level error → wrapped low-level sentinel.
func (r *flashcardRepository) CreateFlashcard(ctx context.Context, flashcard models.Flashcard) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.CreateFlashcard").Msg("error: cannot begin transaction")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createFlashcard, flashcard.Word, flashcard.Definition, flashcard.CategoryID)
	if err := row.Scan(&flashcard.ID); err != nil {
		log.Err(err).Str("func", "*flashcardRepository.CreateFlashcard").Msg("error: flashcard insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Flashcard{}, ErrCategoryNotFound
		default:
			return models.Flashcard{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// fan out a progress row to every existing user
	rows, err := tx.QueryContext(ctx, listUserIDs)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.CreateFlashcard").Msg("error: listing users for seeding failed")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	userIDs := make([]int64, 0, 50)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			log.Err(err).Str("func", "*flashcardRepository.CreateFlashcard").Msg("error: scanning user id failed")
			return models.Flashcard{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	for _, userID := range userIDs {
		if _, err := tx.ExecContext(ctx, seedUserFlashcard, userID, flashcard.ID, flashcard.CategoryID, models.StatusNeedsStudying); err != nil {
			log.Err(err).
				Str("func", "*flashcardRepository.CreateFlashcard").
				Int64("user_id", userID).
				Msg("error: seeding progress row failed")
			return models.Flashcard{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*flashcardRepository.CreateFlashcard").Msg("error: commit failed")
		return models.Flashcard{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return flashcard, nil
}

// ListFlashcards returns every flashcard ordered by id ascending. An empty
// table yields an empty slice, not an error.
func (r *flashcardRepository) ListFlashcards(ctx context.Context) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFlashcards)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.ListFlashcards").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	flashcards := make([]models.Flashcard, 0, 50)
	for rows.Next() {
		var flashcard models.Flashcard
		if err := rows.Scan(&flashcard.ID, &flashcard.Word, &flashcard.Definition, &flashcard.CategoryID); err != nil {
			log.Err(err).Str("func", "*flashcardRepository.ListFlashcards").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		flashcards = append(flashcards, flashcard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return flashcards, nil
}

// UpdateFlashcard rewrites all mutable columns of the flashcard with the
// given id.
//
// Returns [ErrNothingAffected] when no row matches, and
// [ErrCategoryNotFound] when the new category_id violates the foreign key.
func (r *flashcardRepository) UpdateFlashcard(ctx context.Context, flashcard models.Flashcard) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(flashcard.TableName()).
		Set("word", flashcard.Word).
		Set("definition", flashcard.Definition).
		Set("category_id", flashcard.CategoryID).
		Where(sq.Eq{"id": flashcard.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.UpdateFlashcard").Msg("error: building query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.UpdateFlashcard").Int64("id", flashcard.ID).Msg("error: update failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrCategoryNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return checkAffected(result)
}

// DeleteFlashcard removes the flashcard with the given id. Seeded progress
// rows go with it via the ON DELETE CASCADE on users_flashcards.flashcard_id;
// without the cascade every delete of a card with registered users would trip
// the foreign key.
//
// Returns [ErrNothingAffected] when no row matches.
func (r *flashcardRepository) DeleteFlashcard(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFlashcard, id)
	if err != nil {
		log.Err(err).Str("func", "*flashcardRepository.DeleteFlashcard").Int64("id", id).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}
