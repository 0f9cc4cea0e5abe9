package adapter

import "encoding/json"

// Last.fm wire shapes. The API is loosely typed: artist may be a plain string
// or a nested object, a single search match may arrive as an object instead
// of a one-element array, and images are arrays of size-tagged variants.
// The flex* types absorb those irregularities during decoding.

// lastfmErrorNotFound is the payload-level error code Last.fm uses for
// "track not found" on track.getInfo.
const lastfmErrorNotFound = 6

type lastfmSearchResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Results *struct {
		TrackMatches *struct {
			Track flexTrackList `json:"track"`
		} `json:"trackmatches"`
	} `json:"results"`
}

type lastfmInfoResponse struct {
	Error   int          `json:"error"`
	Message string       `json:"message"`
	Track   *lastfmTrack `json:"track"`
}

type lastfmTrack struct {
	Name   string        `json:"name"`
	Title  string        `json:"title"`
	MBID   string        `json:"mbid"`
	URL    string        `json:"url"`
	Artist flexArtist    `json:"artist"`
	Album  *lastfmAlbum  `json:"album"`
	Image  []lastfmImage `json:"image"`
}

type lastfmAlbum struct {
	Title string        `json:"title"`
	Text  string        `json:"#text"`
	Name  string        `json:"name"`
	Image []lastfmImage `json:"image"`
}

type lastfmImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

// flexArtist decodes either "artist": "Some Name" or
// "artist": {"name": "Some Name", ...}.
type flexArtist struct {
	Name string
}

func (a *flexArtist) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

// flexTrackList decodes either a JSON array of tracks or a single bare track
// object, which Last.fm emits when a search yields exactly one match.
type flexTrackList []lastfmTrack

func (l *flexTrackList) UnmarshalJSON(data []byte) error {
	var list []lastfmTrack
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single lastfmTrack
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = flexTrackList{single}
	return nil
}

// name returns the track title, preferring "name" over the occasionally used
// "title" key.
func (t lastfmTrack) name() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Title
}

// albumName resolves the album title across the three keys Last.fm uses.
func (a *lastfmAlbum) albumName() string {
	if a == nil {
		return ""
	}
	if a.Title != "" {
		return a.Title
	}
	if a.Text != "" {
		return a.Text
	}
	return a.Name
}
