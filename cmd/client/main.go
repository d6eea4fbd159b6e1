package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cadet-sync/internal/client"
	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("cadet-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("cadet-sync-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
