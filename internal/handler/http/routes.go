package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)

		r.Get("/api/tracks/search", h.searchTracks)
		r.Get("/api/tracks/{mbid}", h.getTrack)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/{id}", h.getUser)

		r.Route("/api/playlists", func(r chi.Router) {
			r.Get("/", h.listPlaylists)
			r.Post("/", h.createPlaylist)

			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/", h.renamePlaylist)
				r.Put("/", h.addTrack)
				r.Delete("/", h.deletePlaylist)
				r.Delete("/tracks", h.removeTrack)
			})
		})
	})

	return router
}
