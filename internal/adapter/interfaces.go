package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/track_provider_mock.go -package=mock

import "context"

// TrackProvider is the outbound boundary to the external metadata catalog.
//
// Implementations translate provider-specific wire formats into
// [ProviderTrack] records but apply no domain policy: image selection,
// identifier filtering, and fuzzy ranking belong to the track service.
type TrackProvider interface {
	// SearchTracks runs a track search with the given provider-formatted
	// query and returns the raw matches in provider order.
	SearchTracks(ctx context.Context, query string) ([]ProviderTrack, error)

	// TrackInfo looks up a single track by its MusicBrainz identifier.
	// Returns ErrTrackNotFound when the provider explicitly reports no
	// match, or ErrUpstreamUnavailable for any other provider failure.
	TrackInfo(ctx context.Context, mbid string) (ProviderTrack, error)
}

// ProviderTrack is a provider-neutral view of one catalog entry. Artist names
// and image lists are already lifted out of the provider's heterogeneous
// payload shapes, but no entry has been filtered or re-ranked yet.
type ProviderTrack struct {
	Name   string
	Artist string
	MBID   string
	URL    string
	Album  string
	Images []ProviderImage
}

// ProviderImage is one size-tagged image variant attached to a catalog entry.
type ProviderImage struct {
	URL  string
	Size string
}
