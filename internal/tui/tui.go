// Package tui renders the offline status dashboard of the client.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/service"
	"github.com/MKhiriev/cadet-sync/models"
)

type TUI struct {
	controller service.ClientController
	cache      service.ClientCacheService
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		controller: services.Controller,
		cache:      services.CacheService,
		buildInfo:  buildInfo,
		logger:     log.WithComponent("tui"),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.controller, t.cache, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("dashboard stopped")
	}
	return err
}
