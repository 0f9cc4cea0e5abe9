package service

import (
	"context"

	"github.com/soundshelf/soundshelf/models"
)

// AuthService covers credential issuance and verification: account
// registration, login, and the JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate resolves a raw bearer token string to the user it was
	// issued for. Every failure mode (bad signature, expiry, missing claim,
	// unknown user) collapses into ErrTokenIsExpiredOrInvalid so that
	// callers cannot distinguish the cause.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// PlaylistService owns the playlist aggregate invariants. Every operation is
// scoped to the owner identity resolved upstream; mutations load the whole
// aggregate, apply the change in memory, and persist it back in one write.
type PlaylistService interface {
	ListPlaylists(ctx context.Context, ownerID string) ([]models.Playlist, error)
	CreatePlaylist(ctx context.Context, ownerID, title string) (models.Playlist, error)
	RenamePlaylist(ctx context.Context, ownerID, playlistID, newTitle string) (models.Playlist, error)
	AddTrack(ctx context.Context, ownerID, playlistID string, track models.Track) (models.Playlist, error)
	RemoveTrack(ctx context.Context, ownerID, playlistID, mbid string) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, ownerID, playlistID string) error
}

// TrackService is the stateless track search pipeline: it queries the
// metadata provider, canonicalizes heterogeneous results, drops entries
// without a usable external identifier, and optionally re-ranks by
// approximate similarity to the query.
type TrackService interface {
	Search(ctx context.Context, query string, fuzzy bool) ([]models.Track, error)
	GetByMBID(ctx context.Context, mbid string) (models.TrackInfo, error)
}
