package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/models"
)

// playlistRepository is the PostgreSQL-backed implementation of
// [PlaylistRepository].
//
// A playlist row holds its embedded track sequence in a JSONB column, so the
// whole aggregate is written and read in one statement. A "version" column
// implements optimistic locking: every UPDATE carries the version the caller
// loaded and bumps it, and a stale version touches zero rows.
type playlistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlaylistRepository constructs a [PlaylistRepository] backed by the
// provided database connection and logger.
func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	logger.Debug().Msg("creating playlist repository")
	return &playlistRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlaylist persists a new aggregate with version 1.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateTitle]; the unique
//     index on (owner_id, lower(title)) enforces the per-owner rule.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *playlistRepository) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	tracks, err := marshalTracks(playlist.Tracks)
	if err != nil {
		return models.Playlist{}, err
	}

	row := r.db.QueryRowContext(ctx, createPlaylist,
		playlist.ID, playlist.OwnerID, playlist.Title, tracks, playlist.CreatedAt, playlist.UpdatedAt)

	created, err := scanPlaylist(row)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.CreatePlaylist").Msg("error: creating playlist")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Playlist{}, ErrDuplicateTitle
		default:
			return models.Playlist{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindPlaylistByID loads the whole aggregate with the given identifier.
// Returns [ErrPlaylistNotFound] when no row matches.
func (r *playlistRepository) FindPlaylistByID(ctx context.Context, id string) (models.Playlist, error) {
	row := r.db.QueryRowContext(ctx, findPlaylistByID, id)

	playlist, err := scanPlaylist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Playlist{}, ErrPlaylistNotFound
		}
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return playlist, nil
}

// FindPlaylistsByOwner returns the owner's aggregates most recently created
// first. An empty result set yields an empty (non-nil) slice.
func (r *playlistRepository) FindPlaylistsByOwner(ctx context.Context, ownerID string) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findPlaylistsByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.FindPlaylistsByOwner").Msg("error: querying playlists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return playlists, nil
}

// FindPlaylistByOwnerAndTitle returns the owner's aggregate whose title
// matches case-insensitively. Returns [ErrPlaylistNotFound] when no row
// matches.
func (r *playlistRepository) FindPlaylistByOwnerAndTitle(ctx context.Context, ownerID, title string) (models.Playlist, error) {
	row := r.db.QueryRowContext(ctx, findPlaylistByOwnerAndTitle, ownerID, title)

	playlist, err := scanPlaylist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Playlist{}, ErrPlaylistNotFound
		}
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return playlist, nil
}

// UpdatePlaylist rewrites the aggregate guarded by its optimistic version.
//
// When the UPDATE matches no row the playlist is re-read to distinguish a
// deleted aggregate ([ErrPlaylistNotFound]) from a concurrent modification
// ([ErrVersionConflict]).
func (r *playlistRepository) UpdatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	tracks, err := marshalTracks(playlist.Tracks)
	if err != nil {
		return models.Playlist{}, err
	}

	row := r.db.QueryRowContext(ctx, updatePlaylist,
		playlist.Title, tracks, playlist.UpdatedAt, playlist.ID, playlist.Version)

	updated, err := scanPlaylist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, findErr := r.FindPlaylistByID(ctx, playlist.ID); errors.Is(findErr, ErrPlaylistNotFound) {
				return models.Playlist{}, ErrPlaylistNotFound
			}
			return models.Playlist{}, ErrVersionConflict
		}

		log.Err(err).Str("func", "*playlistRepository.UpdatePlaylist").Msg("error: updating playlist")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Playlist{}, ErrDuplicateTitle
		default:
			return models.Playlist{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeletePlaylist removes the aggregate permanently.
// Returns [ErrPlaylistNotFound] when no row was deleted.
func (r *playlistRepository) DeletePlaylist(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePlaylist, id)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.DeletePlaylist").Msg("error: deleting playlist")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlaylist(row rowScanner) (models.Playlist, error) {
	var playlist models.Playlist
	var tracks []byte

	err := row.Scan(&playlist.ID, &playlist.OwnerID, &playlist.Title, &tracks,
		&playlist.CreatedAt, &playlist.UpdatedAt, &playlist.Version)
	if err != nil {
		return models.Playlist{}, err
	}

	playlist.Tracks = make([]models.Track, 0)
	if len(tracks) > 0 {
		if err := json.Unmarshal(tracks, &playlist.Tracks); err != nil {
			return models.Playlist{}, fmt.Errorf("decoding tracks column: %w", err)
		}
	}

	return playlist, nil
}

func marshalTracks(tracks []models.Track) ([]byte, error) {
	if tracks == nil {
		tracks = make([]models.Track, 0)
	}

	data, err := json.Marshal(tracks)
	if err != nil {
		return nil, fmt.Errorf("encoding tracks column: %w", err)
	}

	return data, nil
}
