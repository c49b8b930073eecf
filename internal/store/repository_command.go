package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/models"
)

// commandRepository is the PostgreSQL-backed implementation of
// [CommandRepository].
type commandRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommandRepository constructs a [CommandRepository] backed by the
// provided database connection and logger.
func NewCommandRepository(db *DB, logger *logger.Logger) CommandRepository {
	logger.Debug().Msg("creating command repository")
	return &commandRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCommand inserts a command reference record.
//
// Returns [ErrNothingAffected] when the insert unexpectedly touches zero
// rows.
func (r *commandRepository) CreateCommand(ctx context.Context, command, description string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createCommand, command, description)
	if err != nil {
		log.Err(err).Str("func", "*commandRepository.CreateCommand").Msg("error: insert failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}

// ListCommands returns every command ordered by id ascending. An empty table
// yields an empty slice, not an error.
func (r *commandRepository) ListCommands(ctx context.Context) ([]models.Command, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCommands)
	if err != nil {
		log.Err(err).Str("func", "*commandRepository.ListCommands").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	commands := make([]models.Command, 0, 50)
	for rows.Next() {
		var cmd models.Command
		if err := rows.Scan(&cmd.ID, &cmd.Command, &cmd.Description); err != nil {
			log.Err(err).Str("func", "*commandRepository.ListCommands").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		commands = append(commands, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return commands, nil
}

// UpdateCommand rewrites both mutable columns of the command with the given
// id.
//
// Returns [ErrNothingAffected] when no row matches the id.
func (r *commandRepository) UpdateCommand(ctx context.Context, cmd models.Command) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(cmd.TableName()).
		Set("command", cmd.Command).
		Set("description", cmd.Description).
		Where(sq.Eq{"id": cmd.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commandRepository.UpdateCommand").Msg("error: building query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commandRepository.UpdateCommand").Int64("id", cmd.ID).Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}

// DeleteCommand removes the command with the given id.
//
// Returns [ErrNothingAffected] when no row matches.
func (r *commandRepository) DeleteCommand(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCommand, id)
	if err != nil {
		log.Err(err).Str("func", "*commandRepository.DeleteCommand").Int64("id", id).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result)
}
