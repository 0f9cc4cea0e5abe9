package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/utils"
	"github.com/soundshelf/soundshelf/models"
)

func (h *Handler) listPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	playlists, err := h.services.PlaylistService.ListPlaylists(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("listing playlists failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlists, http.StatusOK)
}

func (h *Handler) createPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	var request models.CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.PlaylistService.CreatePlaylist(ctx, user.ID, request.Title)
	if err != nil {
		log.Err(err).Msg("playlist creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlist, http.StatusCreated)
}

func (h *Handler) renamePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	var request models.RenamePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.PlaylistService.RenamePlaylist(ctx, user.ID, chi.URLParam(r, "id"), request.Title)
	if err != nil {
		log.Err(err).Msg("playlist rename failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlist, http.StatusOK)
}

func (h *Handler) addTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	var request models.AddTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.PlaylistService.AddTrack(ctx, user.ID, chi.URLParam(r, "id"), request.Track())
	if err != nil {
		log.Err(err).Msg("adding track failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlist, http.StatusOK)
}

func (h *Handler) removeTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	var request models.RemoveTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playlist, err := h.services.PlaylistService.RemoveTrack(ctx, user.ID, chi.URLParam(r, "id"), request.MBID)
	if err != nil {
		log.Err(err).Msg("removing track failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, playlist, http.StatusOK)
}

func (h *Handler) deletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	playlistID := chi.URLParam(r, "id")
	if err := h.services.PlaylistService.DeletePlaylist(ctx, user.ID, playlistID); err != nil {
		log.Err(err).Msg("playlist deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeletePlaylistResponse{
		Message: "playlist deleted",
		ID:      playlistID,
	}, http.StatusOK)
}
