package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cadet-sync/internal/validators"
	"github.com/MKhiriev/cadet-sync/models"
)

// SquadronValidationService rejects malformed records before they reach the
// wrapped service. Validation failures wrap ErrInvalidDataProvided.
type SquadronValidationService struct {
	inner     SquadronService
	validator validators.Validator
}

func NewSquadronValidationService() SquadronServiceWrapper {
	return &SquadronValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *SquadronValidationService) CreatePresence(ctx context.Context, presence models.OfflinePresence) (bool, error) {
	if err := v.validator.Validate(ctx, presence); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePresence(ctx, presence)
}

func (v *SquadronValidationService) CreatePresencesBulk(ctx context.Context, request models.BulkPresenceRequest) (models.BulkPresenceResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.BulkPresenceResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePresencesBulk(ctx, request)
}

func (v *SquadronValidationService) CreateUniformInspection(ctx context.Context, inspection models.OfflineInspection) (bool, error) {
	if err := v.validator.Validate(ctx, inspection); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUniformInspection(ctx, inspection)
}

func (v *SquadronValidationService) GetCollection(ctx context.Context, collection models.Collection) ([]models.Entity, error) {
	return v.inner.GetCollection(ctx, collection)
}

func (v *SquadronValidationService) Wrap(wrapped SquadronService) SquadronService {
	v.inner = wrapped
	return v
}
