// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the squadron backend.
//
// The primary abstraction is [ServerAdapter], which decouples the offline
// engine from the REST API. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] and the
// classification helpers ([IsPayloadError], [IsAuthError], [IsTransient]) for
// transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/cadet-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the squadron backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping performs a cheap request against the base URL. Any HTTP answer,
	// whatever its status, means the backend is reachable; only transport
	// failures are returned as errors.
	Ping(ctx context.Context) error

	// CreatePresence sends POST /api/presences with the temp_id as the
	// Idempotency-Key header.
	CreatePresence(ctx context.Context, presence models.OfflinePresence) error

	// CreatePresencesBulk sends POST /api/presences/bulk. Per-record
	// rejections come back in the response, not as an error.
	CreatePresencesBulk(ctx context.Context, req models.BulkPresenceRequest) (models.BulkPresenceResponse, error)

	// CreateUniformInspection sends POST /api/uniform-inspections with the
	// temp_id as the Idempotency-Key header.
	CreateUniformInspection(ctx context.Context, inspection models.OfflineInspection) error

	// GetCollection fetches one reference collection
	// (GET /api/users, /api/sections or /api/activities).
	GetCollection(ctx context.Context, collection models.Collection) ([]models.Entity, error)
}
