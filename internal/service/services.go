package service

import (
	"github.com/soundshelf/soundshelf/internal/adapter"
	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/store"
)

// Services bundles every application service behind one wiring point.
type Services struct {
	AuthService     AuthService
	PlaylistService PlaylistService
	TrackService    TrackService
}

func NewServices(storages *store.Storages, provider adapter.TrackProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		PlaylistService: NewPlaylistService(storages.PlaylistRepository, logger),
		TrackService:    NewTrackService(provider, cfg.App.FuzzyThreshold, logger),
	}
}
