// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemType is the kind of write carried by a [SyncQueueItem].
type ItemType string

const (
	ItemTypePresence   ItemType = "presence"
	ItemTypeInspection ItemType = "inspection"
)

// ItemTypes is the order in which the sync engine drains type groups.
var ItemTypes = []ItemType{ItemTypePresence, ItemTypeInspection}

// PresenceStatus is the attendance mark recorded for a cadet.
type PresenceStatus string

const (
	PresenceStatusPresent PresenceStatus = "present"
	PresenceStatusAbsent  PresenceStatus = "absent"
	PresenceStatusExcused PresenceStatus = "excuse"
	PresenceStatusLate    PresenceStatus = "retard"
)

// OfflinePresence is an attendance mark waiting to reach the backend.
type OfflinePresence struct {
	TempID      string         `json:"temp_id"`
	CadetID     string         `json:"cadet_id"`
	Date        string         `json:"date"`
	Status      PresenceStatus `json:"status"`
	Commentaire string         `json:"commentaire,omitempty"`
}

// OfflineInspection is a uniform inspection waiting to reach the backend.
type OfflineInspection struct {
	TempID         string         `json:"temp_id"`
	CadetID        string         `json:"cadet_id"`
	Date           string         `json:"date"`
	UniformType    string         `json:"uniform_type"`
	CriteriaScores map[string]int `json:"criteria_scores"`
	Commentaire    string         `json:"commentaire,omitempty"`
}

// SyncQueueItem is one pending write in the mutation queue.
//
// Exactly one of Presence and Inspection is set, matching Type. Seq is the
// storage-assigned insertion position and is zero until the item has been
// persisted.
type SyncQueueItem struct {
	Seq           int64              `json:"seq"`
	Type          ItemType           `json:"type"`
	Presence      *OfflinePresence   `json:"-"`
	Inspection    *OfflineInspection `json:"-"`
	Attempts      int                `json:"attempts"`
	CreatedAt     time.Time          `json:"created_at"`
	LastAttemptAt *time.Time         `json:"last_attempt_at,omitempty"`
	LastError     string             `json:"last_error,omitempty"`
}

// TempID returns the idempotency token of the payload.
func (i SyncQueueItem) TempID() string {
	switch {
	case i.Presence != nil:
		return i.Presence.TempID
	case i.Inspection != nil:
		return i.Inspection.TempID
	default:
		return ""
	}
}

// CadetID returns the cadet the payload refers to.
func (i SyncQueueItem) CadetID() string {
	switch {
	case i.Presence != nil:
		return i.Presence.CadetID
	case i.Inspection != nil:
		return i.Inspection.CadetID
	default:
		return ""
	}
}

// SetTempID overwrites the idempotency token of the payload.
func (i *SyncQueueItem) SetTempID(tempID string) {
	switch {
	case i.Presence != nil:
		i.Presence.TempID = tempID
	case i.Inspection != nil:
		i.Inspection.TempID = tempID
	}
}

// MarshalData encodes the payload for storage.
func (i SyncQueueItem) MarshalData() ([]byte, error) {
	switch i.Type {
	case ItemTypePresence:
		if i.Presence == nil {
			return nil, fmt.Errorf("%w: presence payload missing", ErrInvalidQueueItem)
		}
		return json.Marshal(i.Presence)
	case ItemTypeInspection:
		if i.Inspection == nil {
			return nil, fmt.Errorf("%w: inspection payload missing", ErrInvalidQueueItem)
		}
		return json.Marshal(i.Inspection)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidQueueItem, i.Type)
	}
}

// UnmarshalData decodes a stored payload according to i.Type.
func (i *SyncQueueItem) UnmarshalData(data []byte) error {
	switch i.Type {
	case ItemTypePresence:
		var p OfflinePresence
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode presence payload: %w", err)
		}
		i.Presence = &p
	case ItemTypeInspection:
		var p OfflineInspection
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode inspection payload: %w", err)
		}
		i.Inspection = &p
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidQueueItem, i.Type)
	}

	return nil
}

// Clone returns a deep copy so callers can never reach queue internals.
func (i SyncQueueItem) Clone() SyncQueueItem {
	out := i
	if i.Presence != nil {
		p := *i.Presence
		out.Presence = &p
	}
	if i.Inspection != nil {
		p := *i.Inspection
		if i.Inspection.CriteriaScores != nil {
			p.CriteriaScores = make(map[string]int, len(i.Inspection.CriteriaScores))
			for k, v := range i.Inspection.CriteriaScores {
				p.CriteriaScores[k] = v
			}
		}
		out.Inspection = &p
	}
	if i.LastAttemptAt != nil {
		t := *i.LastAttemptAt
		out.LastAttemptAt = &t
	}

	return out
}

// QueueOutcome is what a sync pass asks the queue to persist: items to drop
// and items whose attempt counter must be bumped, both keyed by temp_id.
type QueueOutcome struct {
	Remove    []string
	Failed    map[string]string
	AttemptAt time.Time
}

// IsEmpty reports whether the outcome changes nothing.
func (o QueueOutcome) IsEmpty() bool {
	return len(o.Remove) == 0 && len(o.Failed) == 0
}
