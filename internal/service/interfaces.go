package service

import (
	"context"

	"github.com/MKhiriev/cadet-sync/models"
)

// SquadronService is the write and reference API of the development backend.
//
// Create methods report created == false when the temp_id was already
// stored; the record is then not written again.
type SquadronService interface {
	CreatePresence(ctx context.Context, presence models.OfflinePresence) (created bool, err error)
	CreatePresencesBulk(ctx context.Context, request models.BulkPresenceRequest) (models.BulkPresenceResponse, error)
	CreateUniformInspection(ctx context.Context, inspection models.OfflineInspection) (created bool, err error)

	GetCollection(ctx context.Context, collection models.Collection) ([]models.Entity, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SquadronServiceWrapper defines middleware composition for SquadronService.
// Implementations wrap an existing SquadronService to add behavior such as
// validation.
type SquadronServiceWrapper interface {
	Wrap(SquadronService) SquadronService
}
