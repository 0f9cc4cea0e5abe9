package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/soundshelf/soundshelf/internal/adapter"
	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/models"
)

// notAvailable is the placeholder used when the provider reports no usable
// value for a field.
const notAvailable = "N/A"

// imageSizeRank orders provider artwork sizes from most to least preferred.
var imageSizeRank = []string{"extralarge", "large", "medium", "small"}

// trackService implements TrackService on top of a metadata provider.
//
// The provider hands back loosely shaped results; this layer applies domain
// policy: canonical field fallbacks, artwork selection, dropping entries
// without an external identifier, and the optional approximate re-rank.
type trackService struct {
	provider  adapter.TrackProvider
	threshold float64
	logger    *logger.Logger
}

// NewTrackService constructs a TrackService that searches through the given
// provider. threshold is the minimum normalized similarity (0..1) a result
// must score against the query to survive a fuzzy search.
func NewTrackService(provider adapter.TrackProvider, threshold float64, logger *logger.Logger) TrackService {
	return &trackService{
		provider:  provider,
		threshold: threshold,
		logger:    logger,
	}
}

// Search runs a track search against the provider and returns canonicalized
// results.
//
// The query is trimmed and must be non-empty. Words are joined with '+'
// before being sent upstream; when fuzzy is set a trailing '*' widens the
// provider-side match and the results are then filtered and re-ranked by
// Jaro-Winkler similarity against the original query. Entries without an
// mbid are always dropped, fuzzy or not, because every downstream playlist
// operation keys tracks by mbid.
func (t *trackService) Search(ctx context.Context, query string, fuzzy bool) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	providerQuery := strings.Join(strings.Fields(query), "+")
	if fuzzy {
		providerQuery += "*"
	}

	found, err := t.provider.SearchTracks(ctx, providerQuery)
	if err != nil {
		log.Err(err).Str("query", query).Msg("track search ended with error")
		return nil, fmt.Errorf("track search ended with error: %w", err)
	}

	tracks := make([]models.Track, 0, len(found))
	for _, candidate := range found {
		if strings.TrimSpace(candidate.MBID) == "" {
			continue
		}
		tracks = append(tracks, canonicalTrack(candidate))
	}

	if fuzzy {
		tracks = t.rankBySimilarity(query, tracks)
	}

	return tracks, nil
}

// GetByMBID fetches detail metadata for a single track.
func (t *trackService) GetByMBID(ctx context.Context, mbid string) (models.TrackInfo, error) {
	log := logger.FromContext(ctx)

	mbid = strings.TrimSpace(mbid)
	if mbid == "" {
		return models.TrackInfo{}, ErrMissingTrackData
	}

	found, err := t.provider.TrackInfo(ctx, mbid)
	if err != nil {
		log.Err(err).Str("mbid", mbid).Msg("track lookup ended with error")
		return models.TrackInfo{}, fmt.Errorf("track lookup ended with error: %w", err)
	}

	return models.TrackInfo{
		Name:   found.Name,
		Artist: found.Artist,
		Album:  found.Album,
		MBID:   found.MBID,
		Image:  pickImage(found.Images),
	}, nil
}

// rankBySimilarity keeps only tracks whose name or artist scores at least the
// configured threshold against the query, ordered best match first. The sort
// is stable, so equally scored tracks keep the provider's relevance order.
func (t *trackService) rankBySimilarity(query string, tracks []models.Track) []models.Track {
	metric := metrics.NewJaroWinkler()
	needle := strings.ToLower(query)

	type scored struct {
		track models.Track
		score float64
	}

	kept := make([]scored, 0, len(tracks))
	for _, track := range tracks {
		byName := strutil.Similarity(needle, strings.ToLower(track.Name), metric)
		byArtist := strutil.Similarity(needle, strings.ToLower(track.Artist), metric)

		score := byName
		if byArtist > score {
			score = byArtist
		}
		if score >= t.threshold {
			kept = append(kept, scored{track: track, score: score})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })

	ranked := make([]models.Track, 0, len(kept))
	for _, s := range kept {
		ranked = append(ranked, s.track)
	}

	return ranked
}

// canonicalTrack maps a provider result onto the domain track shape, filling
// missing fields with the "N/A" placeholder.
func canonicalTrack(candidate adapter.ProviderTrack) models.Track {
	track := models.Track{
		Name:   candidate.Name,
		Artist: candidate.Artist,
		MBID:   candidate.MBID,
		URL:    candidate.URL,
		Image:  pickImage(candidate.Images),
	}

	if track.Name == "" {
		track.Name = notAvailable
	}
	if track.URL == "" {
		track.URL = notAvailable
	}

	return track
}

// pickImage selects the best artwork URL from a provider image set:
// the largest preferred size with a non-empty URL wins, then any non-empty
// URL, then the "N/A" placeholder.
func pickImage(images []adapter.ProviderImage) string {
	for _, size := range imageSizeRank {
		for _, image := range images {
			if image.Size == size && image.URL != "" {
				return image.URL
			}
		}
	}

	for _, image := range images {
		if image.URL != "" {
			return image.URL
		}
	}

	return notAvailable
}
