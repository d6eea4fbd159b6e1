// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PresenceRecord is one line of a bulk attendance submission.
type PresenceRecord struct {
	CadetID     string         `json:"cadet_id"`
	Status      PresenceStatus `json:"status"`
	Commentaire string         `json:"commentaire,omitempty"`
}

// BulkPresenceRequest is the body of POST /api/presences/bulk.
type BulkPresenceRequest struct {
	Date      string           `json:"date"`
	Presences []PresenceRecord `json:"presences"`
}

// BulkPresenceError is a per-record rejection reported by the bulk endpoint.
type BulkPresenceError struct {
	CadetID string `json:"cadet_id"`
	Message string `json:"message"`
}

// BulkPresenceResponse is the body returned by POST /api/presences/bulk.
type BulkPresenceResponse struct {
	CreatedCount int                 `json:"created_count"`
	Errors       []BulkPresenceError `json:"errors"`
}

// BulkPresenceResult is what the controller reports for a bulk submission.
// Errors returned by the backend are terminal and are never queued; Queued
// counts records written to the mutation queue because the backend could
// not be reached.
type BulkPresenceResult struct {
	CreatedCount int                 `json:"created_count"`
	Errors       []BulkPresenceError `json:"errors,omitempty"`
	Offline      bool                `json:"offline"`
	Queued       int                 `json:"queued"`
}

// PresenceFromRecord turns a bulk line into a queueable payload.
func PresenceFromRecord(date string, r PresenceRecord) OfflinePresence {
	return OfflinePresence{
		CadetID:     r.CadetID,
		Date:        date,
		Status:      r.Status,
		Commentaire: r.Commentaire,
	}
}
