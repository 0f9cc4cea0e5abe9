package main

import (
	"context"
	"fmt"

	"github.com/soundshelf/soundshelf/internal/adapter"
	"github.com/soundshelf/soundshelf/internal/config"
	myHTTP "github.com/soundshelf/soundshelf/internal/handler/http"
	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/server"
	"github.com/soundshelf/soundshelf/internal/service"
	"github.com/soundshelf/soundshelf/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("soundshelf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	provider := adapter.NewLastfmProvider(cfg.Lastfm, log)
	services := service.NewServices(storages, provider, *cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
