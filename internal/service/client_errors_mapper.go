// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/app"
	"github.com/MKhiriev/cadet-sync/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case adapter.IsPayloadError(err):
		return fmt.Errorf("%w: %s", ErrRecordRejected, adapter.Message(err))
	case adapter.IsAuthError(err):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	}

	return err
}

// UserMessage returns the French text shown to the user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOffline):
		return app.MsgNoConnection
	case errors.Is(err, ErrSessionExpired), adapter.IsAuthError(err):
		return app.MsgSessionExpired
	case errors.Is(err, ErrRecordRejected):
		return extractBody(err)
	case errors.Is(err, ErrInvalidRecord):
		return invalidRecordMessage(err)
	case errors.Is(err, ErrCacheRefresh):
		return app.MsgCacheRefreshFailed
	case errors.Is(err, ErrQueueStorage), errors.Is(err, ErrCacheStorage):
		return app.MsgLocalStorageError
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNoConnection
	default:
		return app.MsgUnexpectedError
	}
}

func invalidRecordMessage(err error) string {
	var detail string
	switch {
	case errors.Is(err, validators.ErrInvalidCadetID):
		detail = "cadet manquant"
	case errors.Is(err, validators.ErrInvalidDate):
		detail = "date invalide (AAAA-MM-JJ)"
	case errors.Is(err, validators.ErrInvalidStatus):
		detail = "statut inconnu"
	case errors.Is(err, validators.ErrInvalidUniformType):
		detail = "type de tenue manquant"
	case errors.Is(err, validators.ErrEmptyCriteriaScores), errors.Is(err, validators.ErrInvalidCriterionScore):
		detail = "notes de critères invalides"
	case errors.Is(err, validators.ErrEmptyPresences):
		detail = "aucune présence"
	case errors.Is(err, validators.ErrDuplicateCadet):
		detail = "cadet en double"
	default:
		return app.MsgInvalidRecord
	}

	return app.MsgInvalidRecord + " : " + detail
}

// extractBody extracts the body from a message of the form "record rejected by server: <body>"
func extractBody(err error) string {
	msg := err.Error()
	prefix := ErrRecordRejected.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
