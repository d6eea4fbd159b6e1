// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors raised before the service layer is reached.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrIdempotencyKeyMismatch is returned when the Idempotency-Key header
	// and the temp_id of the body name different records.
	ErrIdempotencyKeyMismatch = errors.New("Idempotency-Key does not match temp_id")
)
