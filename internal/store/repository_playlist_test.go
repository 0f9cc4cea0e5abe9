package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/models"
)

func newTestPlaylistRepo(t *testing.T) (*playlistRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &playlistRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func playlistColumns() []string {
	return []string{"id", "owner_id", "title", "tracks", "created_at", "updated_at", "version"}
}

func tracksJSON(t *testing.T, tracks []models.Track) []byte {
	t.Helper()

	data, err := json.Marshal(tracks)
	if err != nil {
		t.Fatalf("failed to marshal tracks: %v", err)
	}
	return data
}

func TestCreatePlaylist_Success(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	playlist := models.Playlist{
		ID:        "pl-1",
		OwnerID:   "user-1",
		Title:     "Mix",
		CreatedAt: now,
		UpdatedAt: now,
	}

	rows := sqlmock.NewRows(playlistColumns()).
		AddRow(playlist.ID, playlist.OwnerID, playlist.Title, []byte(`[]`), now, now, int64(1))

	mock.ExpectQuery("INSERT INTO playlists").
		WithArgs(playlist.ID, playlist.OwnerID, playlist.Title, []byte(`[]`), now, now).
		WillReturnRows(rows)

	created, err := repo.CreatePlaylist(context.Background(), playlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Version != 1 {
		t.Errorf("expected version=1, got %d", created.Version)
	}
	if created.Tracks == nil {
		t.Error("expected non-nil tracks slice")
	}
	if len(created.Tracks) != 0 {
		t.Errorf("expected empty tracks, got %d", len(created.Tracks))
	}
}

func TestCreatePlaylist_DuplicateTitle(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO playlists").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreatePlaylist(context.Background(), models.Playlist{ID: "pl-1", Title: "Mix"})
	if !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestFindPlaylistByID_Success(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	tracks := []models.Track{{Name: "Song", Artist: "Artist", MBID: "mbid-1"}}

	rows := sqlmock.NewRows(playlistColumns()).
		AddRow("pl-1", "user-1", "Mix", tracksJSON(t, tracks), now, now, int64(3))

	mock.ExpectQuery("SELECT id, owner_id, title, tracks").
		WithArgs("pl-1").
		WillReturnRows(rows)

	playlist, err := repo.FindPlaylistByID(context.Background(), "pl-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(playlist.Tracks) != 1 || playlist.Tracks[0].MBID != "mbid-1" {
		t.Errorf("tracks column not decoded: %+v", playlist.Tracks)
	}
	if playlist.Version != 3 {
		t.Errorf("expected version=3, got %d", playlist.Version)
	}
}

func TestFindPlaylistByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, title, tracks").
		WithArgs("no-such-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPlaylistByID(context.Background(), "no-such-id")
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestFindPlaylistsByOwner_EmptyResultIsNotNil(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, title, tracks").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(playlistColumns()))

	playlists, err := repo.FindPlaylistsByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if playlists == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(playlists) != 0 {
		t.Errorf("expected 0 playlists, got %d", len(playlists))
	}
}

func TestFindPlaylistsByOwner_MultipleRows(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(playlistColumns()).
		AddRow("pl-2", "user-1", "Newer", []byte(`[]`), now, now, int64(1)).
		AddRow("pl-1", "user-1", "Older", []byte(`[]`), now.Add(-time.Hour), now.Add(-time.Hour), int64(1))

	mock.ExpectQuery("SELECT id, owner_id, title, tracks").
		WithArgs("user-1").
		WillReturnRows(rows)

	playlists, err := repo.FindPlaylistsByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(playlists) != 2 {
		t.Fatalf("expected 2 playlists, got %d", len(playlists))
	}
	if playlists[0].ID != "pl-2" {
		t.Errorf("expected newest playlist first, got %s", playlists[0].ID)
	}
}

func TestUpdatePlaylist_Success(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	tracks := []models.Track{{Name: "Song", Artist: "Artist", MBID: "mbid-1"}}
	playlist := models.Playlist{
		ID:        "pl-1",
		OwnerID:   "user-1",
		Title:     "Mix",
		Tracks:    tracks,
		UpdatedAt: now,
		Version:   2,
	}

	rows := sqlmock.NewRows(playlistColumns()).
		AddRow(playlist.ID, playlist.OwnerID, playlist.Title, tracksJSON(t, tracks), now, now, int64(3))

	mock.ExpectQuery("UPDATE playlists").
		WithArgs(playlist.Title, tracksJSON(t, tracks), now, playlist.ID, playlist.Version).
		WillReturnRows(rows)

	updated, err := repo.UpdatePlaylist(context.Background(), playlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Version != 3 {
		t.Errorf("expected bumped version=3, got %d", updated.Version)
	}
}

func TestUpdatePlaylist_StaleVersion(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	now := time.Now().UTC()

	// The guarded UPDATE touches zero rows, then the re-read finds the
	// playlist alive: somebody else moved the version forward.
	mock.ExpectQuery("UPDATE playlists").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT id, owner_id, title, tracks").
		WithArgs("pl-1").
		WillReturnRows(sqlmock.NewRows(playlistColumns()).
			AddRow("pl-1", "user-1", "Mix", []byte(`[]`), now, now, int64(5)))

	_, err := repo.UpdatePlaylist(context.Background(), models.Playlist{ID: "pl-1", Version: 2})
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestUpdatePlaylist_DeletedMeanwhile(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE playlists").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT id, owner_id, title, tracks").
		WithArgs("pl-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePlaylist(context.Background(), models.Playlist{ID: "pl-1", Version: 2})
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestUpdatePlaylist_DuplicateTitle(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE playlists").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdatePlaylist(context.Background(), models.Playlist{ID: "pl-1", Title: "Taken", Version: 1})
	if !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestDeletePlaylist_Success(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM playlists").
		WithArgs("pl-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeletePlaylist(context.Background(), "pl-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePlaylist_NotFound(t *testing.T) {
	repo, mock, db := newTestPlaylistRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM playlists").
		WithArgs("no-such-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePlaylist(context.Background(), "no-such-id")
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}
