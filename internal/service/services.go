package service

import (
	"fmt"

	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

// Services groups the services of the development backend.
type Services struct {
	AuthService     AuthService
	SquadronService SquadronService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.DevServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	squadron := NewSquadronValidationService().Wrap(NewSquadronService(storages.SquadronRepository, logger))

	return &Services{
		AuthService:     NewAuthService(cfg, logger),
		SquadronService: squadron,
		AppInfoService:  appInfo,
	}, nil
}
