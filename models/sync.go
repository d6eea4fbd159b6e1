// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorDetail describes one queue item the backend refused during a sync
// pass.
type ErrorDetail struct {
	TempID     string   `json:"temp_id"`
	Type       ItemType `json:"type"`
	CadetID    string   `json:"cadet_id"`
	StatusCode int      `json:"status_code,omitempty"`
	Message    string   `json:"message"`
}

// SyncResult is the summary of one sync pass. It is never persisted.
type SyncResult struct {
	Success      bool          `json:"success"`
	Synced       int           `json:"synced"`
	Errors       int           `json:"errors"`
	Retained     int           `json:"retained"`
	Flagged      int           `json:"flagged"`
	ErrorDetails []ErrorDetail `json:"error_details,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// RecordResult is returned by the record entry points.
type RecordResult struct {
	Success bool   `json:"success"`
	Offline bool   `json:"offline"`
	TempID  string `json:"temp_id"`
}

// ControllerState is the view of the offline engine consumed by UI code.
type ControllerState struct {
	IsOnline       bool
	IsSyncing      bool
	SyncQueueCount int
	LastResult     *SyncResult
	CacheTimestamp *time.Time
}
