package store

import (
	"context"
	"fmt"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/models"
)

// progressRepository is the PostgreSQL-backed implementation of
// [ProgressRepository]. Progress rows are written only by the seeding
// fan-outs in the user and flashcard repositories; this repository reads
// them back per user.
type progressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProgressRepository constructs a [ProgressRepository] backed by the
// provided database connection and logger.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// ListUserFlashcards returns the study progress rows belonging to the given
// user, ordered by flashcard id. An empty result yields an empty slice.
func (r *progressRepository) ListUserFlashcards(ctx context.Context, userID int64) ([]models.UserFlashcard, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserFlashcards, userID)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListUserFlashcards").Int64("user_id", userID).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	progress := make([]models.UserFlashcard, 0, 50)
	for rows.Next() {
		var record models.UserFlashcard
		if err := rows.Scan(&record.UserID, &record.FlashcardID, &record.CategoryID, &record.Status, &record.IsFavorite); err != nil {
			log.Err(err).Str("func", "*progressRepository.ListUserFlashcards").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		progress = append(progress, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return progress, nil
}
