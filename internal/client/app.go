package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/connectivity"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/service"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/internal/tui"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI

	metricsServer *http.Server

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	if err = resolveToken(ctx, storages.StateRepository, serverAdapter, log); err != nil {
		_ = storages.Close()
		return nil, err
	}

	probe := connectivity.NewProbeSource(serverAdapter, cfg.Workers.ProbeInterval, cfg.Adapter.RequestTimeout, log)
	monitor := connectivity.NewMonitor(probe, log)

	var (
		recorder      metrics.Recorder = metrics.Nop{}
		metricsServer *http.Server
	)
	if cfg.Metrics.Address != "" {
		prom := metrics.NewPrometheus()
		recorder = prom

		mux := http.NewServeMux()
		mux.Handle("/metrics", prom.Handler())
		metricsServer = &http.Server{Addr: cfg.Metrics.Address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}

	services := service.NewClientServices(storages, serverAdapter, monitor, recorder, cfg.Workers, log)

	return &App{
		storages:      storages,
		services:      services,
		ui:            tui.New(services, buildInfo, log),
		metricsServer: metricsServer,
		logger:        log,
	}, nil
}

// Run starts the offline controller and blocks on the dashboard.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("closing local storage")
		}
	}()

	if a.metricsServer != nil {
		go a.serveMetrics()
		defer a.shutdownMetrics()
	}

	if err := a.services.Controller.Start(ctx); err != nil {
		return fmt.Errorf("start offline controller: %w", err)
	}
	defer a.services.Controller.Stop()

	return a.ui.Run(ctx)
}

func (a *App) serveMetrics() {
	a.logger.Info().Str("address", a.metricsServer.Addr).Msg("serving metrics")
	if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Err(err).Msg("metrics server stopped")
	}
}

func (a *App) shutdownMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.metricsServer.Shutdown(ctx); err != nil {
		a.logger.Err(err).Msg("metrics server shutdown")
	}
}

// resolveToken persists a token given by configuration, or restores the one
// saved by an earlier run. An expired token is still used; the backend answers
// 401 and the dashboard reports the expired session.
func resolveToken(ctx context.Context, state store.StateRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) error {
	token := serverAdapter.Token()
	if token != "" {
		if err := state.Set(ctx, store.StateKeyAuthToken, token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	} else {
		saved, found, err := state.Get(ctx, store.StateKeyAuthToken)
		if err != nil {
			return fmt.Errorf("restore token: %w", err)
		}
		if !found {
			log.Warn().Msg("no bearer token configured, backend calls will be rejected")
			return nil
		}
		token = saved
		serverAdapter.SetToken(token)
	}

	userID, expiresAt, err := utils.ParseUnverifiedClaims(token)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("bearer token is not a JWT")
	case !expiresAt.IsZero() && expiresAt.Before(time.Now()):
		log.Warn().Str("user_id", userID).Time("expired_at", expiresAt).Msg("bearer token expired")
	default:
		log.Info().Str("user_id", userID).Msg("bearer token loaded")
	}

	return nil
}
