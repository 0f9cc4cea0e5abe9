package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/utils"
	"github.com/soundshelf/soundshelf/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		User:        registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		User:        foundUser,
	}, http.StatusOK)
}

// getUser returns the caller's own profile. Requesting any other user's ID is
// rejected with 403 without revealing whether that ID exists.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		unauthorized(w)
		return
	}

	if requestedID := chi.URLParam(r, "id"); requestedID != user.ID {
		log.Error().Str("requested_id", requestedID).Msg("attempt to read another user's profile")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
