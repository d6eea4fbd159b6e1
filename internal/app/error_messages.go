// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cadet-sync client, its status dashboard and the development backend.
//
// All Msg* constants are human-readable French strings that are shown to the
// user, written into HTTP response bodies, or carried in sync summaries.
// Keeping them in one place ensures consistent wording throughout the app.
package app

// Sync engine outcomes.
const (
	// MsgAlreadySyncing is returned when a sync pass is requested while
	// another one is still running.
	MsgAlreadySyncing = "synchronisation déjà en cours"

	// MsgNoConnection is returned when a sync pass is requested while the
	// device is offline.
	MsgNoConnection = "pas de connexion"

	// MsgSessionExpired aborts a pass once the backend rejects the token.
	MsgSessionExpired = "session expirée"

	// MsgQueueUnreadable is returned when the local queue cannot be read.
	MsgQueueUnreadable = "file de synchronisation illisible"

	// MsgQueueUnsaved is returned when the outcome of a pass could not be
	// written back to the local queue.
	MsgQueueUnsaved = "résultat de synchronisation non enregistré"

	MsgNothingToSync = "rien à synchroniser"

	MsgSyncComplete = "synchronisation terminée"

	// MsgSyncPartial is used when some items were rejected or kept for the
	// next pass.
	MsgSyncPartial = "synchronisation partielle"
)

// Controller and cache messages.
const (
	// MsgCacheRefreshFailed is shown when one of the reference collections
	// could not be downloaded; the previous snapshot stays in place.
	MsgCacheRefreshFailed = "échec de la mise à jour des données de référence"

	MsgSavedOffline = "enregistré hors ligne"

	MsgInvalidRecord = "saisie invalide"

	MsgLocalStorageError = "erreur de stockage local"

	MsgUnexpectedError = "erreur inattendue"
)

// Development backend response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "données invalides"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "erreur interne du serveur"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "jeton expiré ou invalide"

	// MsgNoTokenProvided is returned when the Authorization header is missing.
	MsgNoTokenProvided = "jeton manquant"

	MsgCadetNotFound = "cadet introuvable"

	// MsgDuplicateInBulk is reported for a bulk line whose cadet already
	// appeared earlier in the same request.
	MsgDuplicateInBulk = "cadet en double dans la saisie"

	MsgNotFound = "ressource introuvable"
)
