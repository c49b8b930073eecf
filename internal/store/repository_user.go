package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flashdeck/flashdeck/internal/logger"
	"github.com/flashdeck/flashdeck/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation (with progress seeding) and credential lookups
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and seeds one study progress row per
// existing flashcard, so the new account starts with every card marked
// "Needs studying".
//
// The insert and the fan-out run inside one transaction: a crash between
// them can never leave a user with a partial set of progress rows.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	row := tx.QueryRowContext(ctx, createUser, username, passwordHash, role)
	if err := row.Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// seed study progress for every flashcard that already exists
	rows, err := tx.QueryContext(ctx, listFlashcardsForSeeding)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: listing flashcards for seeding failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	type seedTarget struct {
		flashcardID int64
		categoryID  int64
	}
	targets := make([]seedTarget, 0, 50)

	for rows.Next() {
		var t seedTarget
		if err := rows.Scan(&t.flashcardID, &t.categoryID); err != nil {
			rows.Close()
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning flashcard row failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	for _, t := range targets {
		if _, err := tx.ExecContext(ctx, seedUserFlashcard, user.ID, t.flashcardID, t.categoryID, models.StatusNeedsStudying); err != nil {
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Int64("flashcard_id", t.flashcardID).
				Msg("error: seeding progress row failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return user, nil
}

// UsernameExists reports whether a user with the given username is already
// registered.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, usernameExists, username)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.UsernameExists").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// FindIDByUsername resolves a username to the internal user id.
//
// Returns [ErrNoUserWasFound] when no such user exists.
func (r *userRepository) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	row := r.db.QueryRowContext(ctx, findIDByUsername, username)
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindIDByUsername").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return id, nil
}

// GetPasswordHash fetches the stored bcrypt digest for the given user id.
func (r *userRepository) GetPasswordHash(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	var hash string
	row := r.db.QueryRowContext(ctx, getPasswordHash, userID)
	if err := row.Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetPasswordHash").Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return hash, nil
}

// GetRole fetches the role stored for the given user id.
func (r *userRepository) GetRole(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	var role string
	row := r.db.QueryRowContext(ctx, getRole, userID)
	if err := row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetRole").Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return role, nil
}

// IsAdmin reports whether a user row exists with the given id and the admin
// role. A missing user resolves to false, not an error.
func (r *userRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var admin bool
	row := r.db.QueryRowContext(ctx, isAdmin, userID)
	if err := row.Scan(&admin); err != nil {
		log.Err(err).Str("func", "*userRepository.IsAdmin").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return admin, nil
}
