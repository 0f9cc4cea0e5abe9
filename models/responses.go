package models

// LoginResponse is returned by a successful login. The token is also echoed
// in the Authorization response header for clients that prefer headers.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// DeletePlaylistResponse confirms removal of a playlist aggregate.
type DeletePlaylistResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// TrackInfo is the outward shape of a single-track provider lookup. It is
// richer than the embedded [Track] record: the provider's detail endpoint
// also reports the album.
type TrackInfo struct {
	Name   string `json:"track"`
	Artist string `json:"artist"`
	Album  string `json:"album,omitempty"`
	MBID   string `json:"mbid"`
	Image  string `json:"image,omitempty"`
}
