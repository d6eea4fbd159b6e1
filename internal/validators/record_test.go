// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cadet-sync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPresence() models.OfflinePresence {
	return models.OfflinePresence{
		CadetID: "42",
		Date:    "2025-01-10",
		Status:  models.PresenceStatusPresent,
	}
}

func validInspection() models.OfflineInspection {
	return models.OfflineInspection{
		CadetID:        "42",
		Date:           "2025-01-10",
		UniformType:    "tenue_de_parade",
		CriteriaScores: map[string]int{"chaussures": 4, "coiffure": 0},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	p := validPresence()
	i := validInspection()

	assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))
	assert.NoError(t, v.Validate(ctx, i))
	assert.NoError(t, v.Validate(ctx, &i))
}

// ---------------------------------------------------------------------------
// OfflinePresence
// ---------------------------------------------------------------------------

func TestValidatePresence(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.OfflinePresence)
		fields  []string
		wantErr error
	}{
		{"valid", func(p *models.OfflinePresence) {}, nil, nil},
		{"every status", func(p *models.OfflinePresence) { p.Status = models.PresenceStatusLate }, nil, nil},
		{"empty cadet", func(p *models.OfflinePresence) { p.CadetID = " " }, nil, ErrInvalidCadetID},
		{"bad date", func(p *models.OfflinePresence) { p.Date = "10/01/2025" }, nil, ErrInvalidDate},
		{"impossible date", func(p *models.OfflinePresence) { p.Date = "2025-02-30" }, nil, ErrInvalidDate},
		{"bad status", func(p *models.OfflinePresence) { p.Status = "malade" }, nil, ErrInvalidStatus},
		{"temp_id not checked by default", func(p *models.OfflinePresence) { p.TempID = "" }, nil, nil},
		{"temp_id when asked", func(p *models.OfflinePresence) { p.TempID = "" }, []string{FieldTempID}, ErrInvalidTempID},
		{"scoped to cadet only", func(p *models.OfflinePresence) { p.Status = "x" }, []string{FieldCadetID}, nil},
		{"unknown field", func(p *models.OfflinePresence) {}, []string{"grade"}, ErrUnknownField},
	}

	v := NewRecordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPresence()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p, tt.fields...)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// OfflineInspection
// ---------------------------------------------------------------------------

func TestValidateInspection(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(i *models.OfflineInspection)
		wantErr error
	}{
		{"valid", func(i *models.OfflineInspection) {}, nil},
		{"empty uniform", func(i *models.OfflineInspection) { i.UniformType = "" }, ErrInvalidUniformType},
		{"no scores", func(i *models.OfflineInspection) { i.CriteriaScores = nil }, ErrEmptyCriteriaScores},
		{"negative score", func(i *models.OfflineInspection) { i.CriteriaScores["ceinture"] = -1 }, ErrInvalidCriterionScore},
		{"blank criterion", func(i *models.OfflineInspection) { i.CriteriaScores[""] = 3 }, ErrInvalidCriterionScore},
		{"empty cadet", func(i *models.OfflineInspection) { i.CadetID = "" }, ErrInvalidCadetID},
	}

	v := NewRecordValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := validInspection()
			tt.mutate(&i)

			err := v.Validate(context.Background(), i)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// BulkPresenceRequest
// ---------------------------------------------------------------------------

func TestValidateBulkPresence(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	valid := models.BulkPresenceRequest{
		Date: "2025-01-10",
		Presences: []models.PresenceRecord{
			{CadetID: "1", Status: models.PresenceStatusPresent},
			{CadetID: "2", Status: models.PresenceStatusExcused, Commentaire: "mot des parents"},
		},
	}
	require.NoError(t, v.Validate(ctx, valid))

	empty := valid
	empty.Presences = nil
	assert.ErrorIs(t, v.Validate(ctx, empty), ErrEmptyPresences)

	badDate := valid
	badDate.Date = ""
	assert.ErrorIs(t, v.Validate(ctx, &badDate), ErrInvalidDate)

	dup := valid
	dup.Presences = append([]models.PresenceRecord{}, valid.Presences...)
	dup.Presences = append(dup.Presences, models.PresenceRecord{CadetID: "1", Status: models.PresenceStatusAbsent})
	assert.ErrorIs(t, v.Validate(ctx, dup), ErrDuplicateCadet)

	badLine := valid
	badLine.Presences = []models.PresenceRecord{{CadetID: "1", Status: "?"}}
	err := v.Validate(ctx, badLine)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Contains(t, err.Error(), "presences[0]")
}

// ---------------------------------------------------------------------------
// SyncQueueItem
// ---------------------------------------------------------------------------

func TestValidateQueueItem(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	p := validPresence()
	p.TempID = "t-1"
	i := validInspection()
	i.TempID = "t-2"

	assert.NoError(t, v.Validate(ctx, models.SyncQueueItem{Type: models.ItemTypePresence, Presence: &p}))
	assert.NoError(t, v.Validate(ctx, &models.SyncQueueItem{Type: models.ItemTypeInspection, Inspection: &i}))

	assert.ErrorIs(t, v.Validate(ctx, models.SyncQueueItem{Type: models.ItemTypePresence, Inspection: &i}), ErrInvalidItemType)
	assert.ErrorIs(t, v.Validate(ctx, models.SyncQueueItem{Type: "grade", Presence: &p}), ErrInvalidItemType)

	noID := validPresence()
	assert.ErrorIs(t, v.Validate(ctx, models.SyncQueueItem{Type: models.ItemTypePresence, Presence: &noID}), ErrInvalidTempID)
}
