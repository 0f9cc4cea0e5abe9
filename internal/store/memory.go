package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/soundshelf/soundshelf/models"
)

// MemoryStore is an in-memory implementation of [UserRepository] and
// [PlaylistRepository]. It enforces the same uniqueness and optimistic
// versioning rules as the PostgreSQL repositories and is used by tests and
// single-process deployments that do not need durable storage.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]models.User     // keyed by user ID
	playlists map[string]models.Playlist // keyed by playlist ID
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]models.User),
		playlists: make(map[string]models.Playlist),
	}
}

// CreateUser implements [UserRepository].
func (m *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return models.User{}, ErrUsernameTaken
		}
	}

	m.users[user.ID] = user
	return user, nil
}

// FindUserByUsername implements [UserRepository].
func (m *MemoryStore) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// FindUserByID implements [UserRepository].
func (m *MemoryStore) FindUserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreatePlaylist implements [PlaylistRepository].
func (m *MemoryStore) CreatePlaylist(_ context.Context, playlist models.Playlist) (models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.playlists {
		if existing.OwnerID == playlist.OwnerID && strings.EqualFold(existing.Title, playlist.Title) {
			return models.Playlist{}, ErrDuplicateTitle
		}
	}

	playlist.Version = 1
	playlist.Tracks = clonedTracks(playlist.Tracks)
	m.playlists[playlist.ID] = playlist

	return clonePlaylist(playlist), nil
}

// FindPlaylistByID implements [PlaylistRepository].
func (m *MemoryStore) FindPlaylistByID(_ context.Context, id string) (models.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playlist, ok := m.playlists[id]
	if !ok {
		return models.Playlist{}, ErrPlaylistNotFound
	}
	return clonePlaylist(playlist), nil
}

// FindPlaylistsByOwner implements [PlaylistRepository]. Results are ordered
// most recently created first.
func (m *MemoryStore) FindPlaylistsByOwner(_ context.Context, ownerID string) ([]models.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playlists := make([]models.Playlist, 0)
	for _, playlist := range m.playlists {
		if playlist.OwnerID == ownerID {
			playlists = append(playlists, clonePlaylist(playlist))
		}
	}

	sort.Slice(playlists, func(i, j int) bool {
		return playlists[i].CreatedAt.After(playlists[j].CreatedAt)
	})

	return playlists, nil
}

// FindPlaylistByOwnerAndTitle implements [PlaylistRepository].
func (m *MemoryStore) FindPlaylistByOwnerAndTitle(_ context.Context, ownerID, title string) (models.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, playlist := range m.playlists {
		if playlist.OwnerID == ownerID && strings.EqualFold(playlist.Title, title) {
			return clonePlaylist(playlist), nil
		}
	}
	return models.Playlist{}, ErrPlaylistNotFound
}

// UpdatePlaylist implements [PlaylistRepository] with an optimistic version
// check mirroring the SQL implementation.
func (m *MemoryStore) UpdatePlaylist(_ context.Context, playlist models.Playlist) (models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.playlists[playlist.ID]
	if !ok {
		return models.Playlist{}, ErrPlaylistNotFound
	}
	if stored.Version != playlist.Version {
		return models.Playlist{}, ErrVersionConflict
	}

	for _, existing := range m.playlists {
		if existing.ID != playlist.ID && existing.OwnerID == playlist.OwnerID &&
			strings.EqualFold(existing.Title, playlist.Title) {
			return models.Playlist{}, ErrDuplicateTitle
		}
	}

	playlist.Version++
	playlist.Tracks = clonedTracks(playlist.Tracks)
	m.playlists[playlist.ID] = playlist

	return clonePlaylist(playlist), nil
}

// DeletePlaylist implements [PlaylistRepository].
func (m *MemoryStore) DeletePlaylist(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.playlists[id]; !ok {
		return ErrPlaylistNotFound
	}
	delete(m.playlists, id)

	return nil
}

func clonePlaylist(playlist models.Playlist) models.Playlist {
	playlist.Tracks = clonedTracks(playlist.Tracks)
	return playlist
}

func clonedTracks(tracks []models.Track) []models.Track {
	cloned := make([]models.Track, len(tracks))
	copy(cloned, tracks)
	return cloned
}
