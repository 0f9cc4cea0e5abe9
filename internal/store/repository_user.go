package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
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

// CreateUser persists a new account and returns the canonical database
// representation via the INSERT's RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken]; the unique
//     index on lower(username) enforces case-insensitive uniqueness.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Username, user.PasswordHash, user.RegisteredAt)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.PasswordHash, &created.RegisteredAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose username matches the given
// (already normalized) value. Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves the account with the given identifier.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.RegisteredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
