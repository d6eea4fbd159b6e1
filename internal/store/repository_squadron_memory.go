// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/models"
)

// Roster is the reference data served by the development backend.
type Roster struct {
	Users      []models.Entity
	Sections   []models.Entity
	Activities []models.Entity
}

// memorySquadronRepository keeps everything in process memory. Records are
// kept in arrival order; the temp_id indexes make replays idempotent.
type memorySquadronRepository struct {
	mu sync.RWMutex

	roster Roster
	cadets map[string]struct{}

	presences        []models.OfflinePresence
	presenceByTemp   map[string]int
	inspections      []models.OfflineInspection
	inspectionByTemp map[string]int

	logger *logger.Logger
}

func NewMemorySquadronRepository(roster Roster, log *logger.Logger) SquadronRepository {
	cadets := make(map[string]struct{}, len(roster.Users))
	for _, u := range roster.Users {
		cadets[u.ID] = struct{}{}
	}

	return &memorySquadronRepository{
		roster:           roster,
		cadets:           cadets,
		presenceByTemp:   make(map[string]int),
		inspectionByTemp: make(map[string]int),
		logger:           log,
	}
}

func (m *memorySquadronRepository) SavePresence(ctx context.Context, presence models.OfflinePresence) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if presence.TempID != "" {
		if _, ok := m.presenceByTemp[presence.TempID]; ok {
			logger.FromContext(ctx).Debug().Str("temp_id", presence.TempID).Msg("presence replay ignored")
			return false, nil
		}
		m.presenceByTemp[presence.TempID] = len(m.presences)
	}
	m.presences = append(m.presences, presence)

	return true, nil
}

func (m *memorySquadronRepository) SaveInspection(ctx context.Context, inspection models.OfflineInspection) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if inspection.TempID != "" {
		if _, ok := m.inspectionByTemp[inspection.TempID]; ok {
			logger.FromContext(ctx).Debug().Str("temp_id", inspection.TempID).Msg("inspection replay ignored")
			return false, nil
		}
		m.inspectionByTemp[inspection.TempID] = len(m.inspections)
	}
	m.inspections = append(m.inspections, inspection)

	return true, nil
}

func (m *memorySquadronRepository) CadetExists(_ context.Context, cadetID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.cadets[cadetID]
	return ok, nil
}

func (m *memorySquadronRepository) ListCollection(_ context.Context, collection models.Collection) ([]models.Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var src []models.Entity
	switch collection {
	case models.CollectionUsers:
		src = m.roster.Users
	case models.CollectionSections:
		src = m.roster.Sections
	case models.CollectionActivities:
		src = m.roster.Activities
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	return slices.Clone(src), nil
}

func (m *memorySquadronRepository) Presences(context.Context) ([]models.OfflinePresence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.presences), nil
}

func (m *memorySquadronRepository) Inspections(context.Context) ([]models.OfflineInspection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.inspections), nil
}

// DefaultRoster returns the demo squadron used when no other data is loaded.
func DefaultRoster() (Roster, error) {
	users := []map[string]any{
		{"id": "1", "prenom": "Jeanne", "nom": "Martin", "role": "cadet", "section_id": "10"},
		{"id": "2", "prenom": "Paul", "nom": "Durand", "role": "cadet", "section_id": "10"},
		{"id": "3", "prenom": "Inès", "nom": "Moreau", "role": "cadet", "section_id": "11"},
		{"id": "4", "prenom": "Lucas", "nom": "Bernard", "role": "cadre", "section_id": "11"},
	}
	sections := []map[string]any{
		{"id": "10", "nom": "Section Alpha"},
		{"id": "11", "nom": "Section Bravo"},
	}
	activities := []map[string]any{
		{"id": "100", "nom": "Cérémonie du 11 novembre", "date": "2025-11-11"},
		{"id": "101", "nom": "Marche d'orientation", "date": "2025-12-06"},
	}

	var (
		roster Roster
		err    error
	)
	if roster.Users, err = toEntities(users); err != nil {
		return Roster{}, err
	}
	if roster.Sections, err = toEntities(sections); err != nil {
		return Roster{}, err
	}
	if roster.Activities, err = toEntities(activities); err != nil {
		return Roster{}, err
	}

	return roster, nil
}

func toEntities(records []map[string]any) ([]models.Entity, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode roster: %w", err)
	}

	var entities []models.Entity
	if err = json.Unmarshal(raw, &entities); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	return entities, nil
}
