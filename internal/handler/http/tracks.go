package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/utils"
)

// searchTracks answers GET /api/tracks/search?track=<query>&fuzzy=<bool>.
// Only fuzzy=true enables the approximate mode; any other value means exact.
func (h *Handler) searchTracks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("track")
	fuzzy := r.URL.Query().Get("fuzzy") == "true"

	tracks, err := h.services.TrackService.Search(ctx, query, fuzzy)
	if err != nil {
		log.Err(err).Str("query", query).Msg("track search failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, tracks, http.StatusOK)
}

func (h *Handler) getTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	mbid := chi.URLParam(r, "mbid")

	track, err := h.services.TrackService.GetByMBID(ctx, mbid)
	if err != nil {
		log.Err(err).Str("mbid", mbid).Msg("track lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, track, http.StatusOK)
}
