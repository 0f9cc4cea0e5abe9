package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/store"
	"github.com/soundshelf/soundshelf/internal/utils"
	"github.com/soundshelf/soundshelf/models"
)

// playlistService is the concrete implementation of PlaylistService.
//
// Every mutation follows the same shape: load the whole aggregate, verify
// existence before ownership, apply the invariant-checked change in memory,
// and persist the aggregate back in a single versioned write. The version
// check at the persistence boundary serializes concurrent mutations of one
// playlist across process instances; two different playlists never contend.
type playlistService struct {
	playlistRepository store.PlaylistRepository
	ids                *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewPlaylistService constructs a PlaylistService backed by the given
// repository.
func NewPlaylistService(playlistRepository store.PlaylistRepository, logger *logger.Logger) PlaylistService {
	return &playlistService{
		playlistRepository: playlistRepository,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// ListPlaylists returns the caller's playlists, most recently created first.
// An empty slice is a valid, non-error result.
func (p *playlistService) ListPlaylists(ctx context.Context, ownerID string) ([]models.Playlist, error) {
	playlists, err := p.playlistRepository.FindPlaylistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing playlists failed: %w", err)
	}

	return playlists, nil
}

// CreatePlaylist creates an empty playlist owned by ownerID.
//
// The title is trimmed and must be non-empty; a title already used by one of
// the owner's playlists (case-insensitively) surfaces as
// store.ErrDuplicateTitle. Titles are only unique per owner, so two
// different users may both own a "Mix".
func (p *playlistService) CreatePlaylist(ctx context.Context, ownerID, title string) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Playlist{}, ErrEmptyTitle
	}

	now := time.Now().UTC()
	playlist := models.Playlist{
		ID:        p.ids.Generate(),
		OwnerID:   ownerID,
		Title:     title,
		Tracks:    make([]models.Track, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := p.playlistRepository.CreatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Str("title", title).Msg("playlist creation ended with error")
		return models.Playlist{}, fmt.Errorf("playlist creation ended with error: %w", err)
	}

	return created, nil
}

// RenamePlaylist changes the title of an owned playlist.
//
// Fails with store.ErrPlaylistNotFound when the aggregate is gone, ErrNotOwner
// when it belongs to someone else, and store.ErrDuplicateTitle when another
// of the owner's playlists already carries the new title (the playlist being
// renamed is excluded, so renaming "Mix" to "mix" succeeds).
func (p *playlistService) RenamePlaylist(ctx context.Context, ownerID, playlistID, newTitle string) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return models.Playlist{}, ErrEmptyTitle
	}

	playlist, err := p.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}

	if existing, err := p.playlistRepository.FindPlaylistByOwnerAndTitle(ctx, ownerID, newTitle); err == nil && existing.ID != playlist.ID {
		return models.Playlist{}, store.ErrDuplicateTitle
	}

	playlist.Title = newTitle
	playlist.UpdatedAt = time.Now().UTC()

	updated, err := p.playlistRepository.UpdatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("playlist_id", playlistID).Msg("playlist rename ended with error")
		return models.Playlist{}, fmt.Errorf("playlist rename ended with error: %w", err)
	}

	return updated, nil
}

// AddTrack appends a track to the end of an owned playlist.
//
// Name, artist, and mbid are all required; a track whose mbid is already
// present in the sequence fails with ErrDuplicateTrack and leaves the
// playlist unchanged.
func (p *playlistService) AddTrack(ctx context.Context, ownerID, playlistID string, track models.Track) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	if track.Name == "" || track.Artist == "" || track.MBID == "" {
		return models.Playlist{}, ErrMissingTrackData
	}

	playlist, err := p.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}

	if playlist.TrackIndex(track.MBID) >= 0 {
		return models.Playlist{}, ErrDuplicateTrack
	}

	playlist.Tracks = append(playlist.Tracks, track)
	playlist.UpdatedAt = time.Now().UTC()

	updated, err := p.playlistRepository.UpdatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("playlist_id", playlistID).Str("mbid", track.MBID).Msg("adding track ended with error")
		return models.Playlist{}, fmt.Errorf("adding track ended with error: %w", err)
	}

	return updated, nil
}

// RemoveTrack removes the track with the given mbid from an owned playlist.
//
// Fails with ErrTrackNotInList when no track matches; the failure is
// idempotent and leaves the track sequence untouched.
func (p *playlistService) RemoveTrack(ctx context.Context, ownerID, playlistID, mbid string) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	if mbid == "" {
		return models.Playlist{}, ErrMissingTrackData
	}

	playlist, err := p.ownedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}

	index := playlist.TrackIndex(mbid)
	if index < 0 {
		return models.Playlist{}, ErrTrackNotInList
	}

	playlist.Tracks = append(playlist.Tracks[:index:index], playlist.Tracks[index+1:]...)
	playlist.UpdatedAt = time.Now().UTC()

	updated, err := p.playlistRepository.UpdatePlaylist(ctx, playlist)
	if err != nil {
		log.Err(err).Str("playlist_id", playlistID).Str("mbid", mbid).Msg("removing track ended with error")
		return models.Playlist{}, fmt.Errorf("removing track ended with error: %w", err)
	}

	return updated, nil
}

// DeletePlaylist removes an owned aggregate permanently.
func (p *playlistService) DeletePlaylist(ctx context.Context, ownerID, playlistID string) error {
	log := logger.FromContext(ctx)

	if _, err := p.ownedPlaylist(ctx, ownerID, playlistID); err != nil {
		return err
	}

	if err := p.playlistRepository.DeletePlaylist(ctx, playlistID); err != nil {
		log.Err(err).Str("playlist_id", playlistID).Msg("playlist deletion ended with error")
		return fmt.Errorf("playlist deletion ended with error: %w", err)
	}

	return nil
}

// ownedPlaylist loads the aggregate and verifies ownership. Existence is
// checked first, so an owner learns their playlist is gone while a stranger
// probing an existing playlist only ever sees ErrNotOwner.
func (p *playlistService) ownedPlaylist(ctx context.Context, ownerID, playlistID string) (models.Playlist, error) {
	playlist, err := p.playlistRepository.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("playlist lookup failed: %w", err)
	}

	if playlist.OwnerID != ownerID {
		return models.Playlist{}, ErrNotOwner
	}

	return playlist, nil
}
