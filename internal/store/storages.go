package store

import (
	"context"
	"fmt"

	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	PlaylistRepository PlaylistRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the repositories. The returned Storages is safe for concurrent use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		PlaylistRepository: NewPlaylistRepository(db, log),
	}, nil
}
