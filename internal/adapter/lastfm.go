package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/logger"
)

// lastfmProvider is the Last.fm-backed implementation of [TrackProvider].
// It issues one GET per call against the audioscrobbler API root, keyed by
// the server-held API credential.
type lastfmProvider struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewLastfmProvider constructs a [TrackProvider] talking to the Last.fm API
// configured in cfg. A missing API key does not fail construction; every
// call will return [ErrMissingAPIKey] instead, so deployments without search
// still start up.
func NewLastfmProvider(cfg config.Lastfm, logger *logger.Logger) TrackProvider {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &lastfmProvider{
		client: client,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// SearchTracks implements [TrackProvider] via the track.search method.
//
// Transport failures, non-2xx responses, payload-level error objects, and a
// missing result structure all collapse into [ErrUpstreamUnavailable]; the
// caller cannot act on the distinction, but the specific cause is logged.
func (p *lastfmProvider) SearchTracks(ctx context.Context, query string) ([]ProviderTrack, error) {
	log := logger.FromContext(ctx)

	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var payload lastfmSearchResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"method":  "track.search",
			"api_key": p.apiKey,
			"track":   query,
			"format":  "json",
		}).
		SetResult(&payload).
		Get("")
	if err != nil {
		log.Err(err).Str("query", query).Msg("track search request failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("query", query).Msg("track search returned error status")
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode())
	}
	if payload.Error != 0 {
		log.Error().Int("code", payload.Error).Str("message", payload.Message).Msg("track search returned provider error")
		return nil, fmt.Errorf("%w: provider error %d", ErrUpstreamUnavailable, payload.Error)
	}
	if payload.Results == nil || payload.Results.TrackMatches == nil {
		log.Error().Str("query", query).Msg("unexpected track search response structure")
		return nil, fmt.Errorf("%w: unexpected response structure", ErrUpstreamUnavailable)
	}

	matches := payload.Results.TrackMatches.Track
	tracks := make([]ProviderTrack, 0, len(matches))
	for _, match := range matches {
		tracks = append(tracks, ProviderTrack{
			Name:   match.name(),
			Artist: match.Artist.Name,
			MBID:   match.MBID,
			URL:    match.URL,
			Images: providerImages(match.Image),
		})
	}

	return tracks, nil
}

// TrackInfo implements [TrackProvider] via the track.getInfo method.
//
// The provider's "not found" error code maps to [ErrTrackNotFound]; any other
// payload-level error code or structural failure maps to
// [ErrUpstreamUnavailable]. Images occasionally nest under the album instead
// of the track, so the album's variants are used as a fallback.
func (p *lastfmProvider) TrackInfo(ctx context.Context, mbid string) (ProviderTrack, error) {
	log := logger.FromContext(ctx)

	if p.apiKey == "" {
		return ProviderTrack{}, ErrMissingAPIKey
	}

	var payload lastfmInfoResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"method":  "track.getInfo",
			"api_key": p.apiKey,
			"mbid":    mbid,
			"format":  "json",
		}).
		SetResult(&payload).
		SetError(&payload).
		Get("")
	if err != nil {
		log.Err(err).Str("mbid", mbid).Msg("track info request failed")
		return ProviderTrack{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	if payload.Error != 0 {
		if payload.Error == lastfmErrorNotFound {
			return ProviderTrack{}, ErrTrackNotFound
		}
		log.Error().Int("code", payload.Error).Str("message", payload.Message).Msg("track info returned provider error")
		return ProviderTrack{}, fmt.Errorf("%w: provider error %d", ErrUpstreamUnavailable, payload.Error)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("mbid", mbid).Msg("track info returned error status")
		return ProviderTrack{}, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode())
	}
	if payload.Track == nil {
		return ProviderTrack{}, ErrTrackNotFound
	}

	track := payload.Track
	images := track.Image
	if len(images) == 0 && track.Album != nil {
		images = track.Album.Image
	}

	info := ProviderTrack{
		Name:   track.name(),
		Artist: track.Artist.Name,
		MBID:   track.MBID,
		URL:    track.URL,
		Album:  track.Album.albumName(),
		Images: providerImages(images),
	}
	if info.MBID == "" {
		info.MBID = mbid
	}

	return info, nil
}

func providerImages(images []lastfmImage) []ProviderImage {
	if len(images) == 0 {
		return nil
	}

	converted := make([]ProviderImage, 0, len(images))
	for _, img := range images {
		converted = append(converted, ProviderImage{URL: img.URL, Size: img.Size})
	}
	return converted
}
