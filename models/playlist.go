package models

import "time"

// Track is a single entry embedded in a playlist. Tracks are never addressable
// outside their playlist; they are appended and removed as part of the
// aggregate.
type Track struct {
	// Name is the track title as reported by the metadata provider.
	Name string `json:"name"`

	// Artist is the performing artist name.
	Artist string `json:"artist"`

	// MBID is the MusicBrainz identifier of the track. It is required and
	// serves as the de-duplication key within a playlist.
	MBID string `json:"mbid"`

	// URL is an optional provider page for the track.
	URL string `json:"url,omitempty"`

	// Image is an optional cover image URL, or "N/A" when the provider had
	// no usable image.
	Image string `json:"image,omitempty"`
}

// Playlist is the aggregate root owning an ordered sequence of embedded
// tracks. All mutations go through the playlist service, which loads the
// whole aggregate, applies the change in memory, and persists it back in a
// single write.
type Playlist struct {
	// ID is the server-generated unique identifier of the playlist (UUID).
	ID string `json:"id"`

	// OwnerID references the owning user. Immutable after creation; every
	// read and mutation is scoped to it.
	OwnerID string `json:"ownerId"`

	// Title is the playlist name, trimmed and unique per owner under
	// case-insensitive comparison.
	Title string `json:"title"`

	// Tracks is the ordered track sequence. Insertion order is significant
	// and no two entries share an MBID.
	Tracks []Track `json:"tracks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Version is the optimistic-locking counter checked at the persistence
	// boundary on every aggregate update. Not exposed via JSON.
	Version int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Playlist model.
func (p Playlist) TableName() string {
	return "playlists"
}

// TrackIndex returns the position of the first track with the given MBID,
// or -1 when the playlist holds no such track.
func (p *Playlist) TrackIndex(mbid string) int {
	for i, t := range p.Tracks {
		if t.MBID == mbid {
			return i
		}
	}
	return -1
}
