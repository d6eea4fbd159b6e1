// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/models"
)

type squadronService struct {
	repo store.SquadronRepository

	logger *logger.Logger
}

func NewSquadronService(repo store.SquadronRepository, log *logger.Logger) SquadronService {
	return &squadronService{
		repo:   repo,
		logger: log,
	}
}

func (s *squadronService) CreatePresence(ctx context.Context, presence models.OfflinePresence) (bool, error) {
	if err := s.ensureCadet(ctx, presence.CadetID); err != nil {
		return false, err
	}

	created, err := s.repo.SavePresence(ctx, presence)
	if err != nil {
		return false, fmt.Errorf("save presence: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("temp_id", presence.TempID).
		Str("cadet_id", presence.CadetID).
		Bool("created", created).
		Msg("presence received")

	return created, nil
}

// CreatePresencesBulk stores every record it can. Unknown cadets are
// reported per record and do not fail the request.
func (s *squadronService) CreatePresencesBulk(ctx context.Context, request models.BulkPresenceRequest) (models.BulkPresenceResponse, error) {
	response := models.BulkPresenceResponse{Errors: []models.BulkPresenceError{}}

	for _, record := range request.Presences {
		exists, err := s.repo.CadetExists(ctx, record.CadetID)
		if err != nil {
			return models.BulkPresenceResponse{}, fmt.Errorf("lookup cadet %s: %w", record.CadetID, err)
		}
		if !exists {
			response.Errors = append(response.Errors, models.BulkPresenceError{
				CadetID: record.CadetID,
				Message: app.MsgCadetNotFound,
			})
			continue
		}

		if _, err = s.repo.SavePresence(ctx, models.PresenceFromRecord(request.Date, record)); err != nil {
			return models.BulkPresenceResponse{}, fmt.Errorf("save presence for %s: %w", record.CadetID, err)
		}
		response.CreatedCount++
	}

	logger.FromContext(ctx).Info().
		Str("date", request.Date).
		Int("created", response.CreatedCount).
		Int("rejected", len(response.Errors)).
		Msg("bulk presences received")

	return response, nil
}

func (s *squadronService) CreateUniformInspection(ctx context.Context, inspection models.OfflineInspection) (bool, error) {
	if err := s.ensureCadet(ctx, inspection.CadetID); err != nil {
		return false, err
	}

	created, err := s.repo.SaveInspection(ctx, inspection)
	if err != nil {
		return false, fmt.Errorf("save inspection: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("temp_id", inspection.TempID).
		Str("cadet_id", inspection.CadetID).
		Bool("created", created).
		Msg("uniform inspection received")

	return created, nil
}

func (s *squadronService) GetCollection(ctx context.Context, collection models.Collection) ([]models.Entity, error) {
	return s.repo.ListCollection(ctx, collection)
}

func (s *squadronService) ensureCadet(ctx context.Context, cadetID string) error {
	exists, err := s.repo.CadetExists(ctx, cadetID)
	if err != nil {
		return fmt.Errorf("lookup cadet %s: %w", cadetID, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrCadetNotFound, cadetID)
	}

	return nil
}
