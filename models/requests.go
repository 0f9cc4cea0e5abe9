package models

// Credentials is the inbound body of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePlaylistRequest is the inbound body of playlist creation.
type CreatePlaylistRequest struct {
	Title string `json:"title"`
}

// RenamePlaylistRequest is the inbound body of a playlist rename.
type RenamePlaylistRequest struct {
	Title string `json:"title"`
}

// AddTrackRequest is the inbound body for appending a track to a playlist.
// Name, Artist and MBID are required; URL and Image are optional.
type AddTrackRequest struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	MBID   string `json:"mbid"`
	URL    string `json:"url"`
	Image  string `json:"image"`
}

// Track converts the request body into an embeddable track record.
func (r AddTrackRequest) Track() Track {
	return Track{
		Name:   r.Name,
		Artist: r.Artist,
		MBID:   r.MBID,
		URL:    r.URL,
		Image:  r.Image,
	}
}

// RemoveTrackRequest identifies the track to remove from a playlist.
type RemoveTrackRequest struct {
	MBID string `json:"mbid"`
}
