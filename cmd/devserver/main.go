package main

import (
	"os"

	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/handler"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/server"
	"github.com/MKhiriev/cadet-sync/internal/service"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithDefaults()
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("cadet-sync-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("issuer", cfg.TokenIssuer).Msg("received configs")

	storages, err := store.NewStorages(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped with error")
	}
}
