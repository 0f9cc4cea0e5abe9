package http

import (
	"context"
	"net/http"

	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a user via [service.AuthService.Authenticate], and stores
// the authenticated user in the request context under [utils.UserCtxKey]
// before delegating to the next handler.
//
// Every rejection, whatever the underlying cause (missing header, malformed
// value, bad signature, expired token, deleted account), produces the same
// HTTP 401 response body. The cause is only visible in the logs, so an
// attacker probing the API learns nothing from the response itself.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token authentication failed")
			unauthorized(w)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
