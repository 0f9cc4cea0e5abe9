package store

import (
	"context"

	"github.com/soundshelf/soundshelf/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Usernames are stored lowercased; callers are expected to normalize before
// lookup. Implementations must enforce case-insensitive username uniqueness
// and surface violations as [ErrUsernameTaken].
type UserRepository interface {
	// CreateUser persists a new account and returns the canonical stored
	// record. Returns ErrUsernameTaken when the username is already in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given (normalized)
	// username, or ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given ID, or ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// PlaylistRepository is the persistence contract for playlist aggregates.
//
// A playlist is always read and written as a whole, tracks included. Updates
// carry the version the caller loaded; implementations must reject writes
// against a stale version with [ErrVersionConflict] so that concurrent
// mutations of one aggregate serialize instead of silently losing tracks.
// Implementations must also enforce per-owner case-insensitive title
// uniqueness and surface violations as [ErrDuplicateTitle].
type PlaylistRepository interface {
	// CreatePlaylist persists a new aggregate and returns the stored record.
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)

	// FindPlaylistByID returns the aggregate with the given ID,
	// or ErrPlaylistNotFound.
	FindPlaylistByID(ctx context.Context, id string) (models.Playlist, error)

	// FindPlaylistsByOwner returns all aggregates owned by ownerID, most
	// recently created first. An empty slice is a valid result.
	FindPlaylistsByOwner(ctx context.Context, ownerID string) ([]models.Playlist, error)

	// FindPlaylistByOwnerAndTitle returns the owner's aggregate whose title
	// matches case-insensitively, or ErrPlaylistNotFound.
	FindPlaylistByOwnerAndTitle(ctx context.Context, ownerID, title string) (models.Playlist, error)

	// UpdatePlaylist rewrites the whole aggregate, bumping its version.
	// Returns ErrPlaylistNotFound if the aggregate is gone and
	// ErrVersionConflict if playlist.Version is stale.
	UpdatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)

	// DeletePlaylist removes the aggregate permanently,
	// or returns ErrPlaylistNotFound.
	DeletePlaylist(ctx context.Context, id string) error
}
