package service

import "errors"

var (
	// ErrOffline is returned by operations that need the backend while the
	// connectivity monitor reports offline.
	ErrOffline = errors.New("offline")

	ErrInvalidRecord = errors.New("invalid record")

	// ErrRecordRejected wraps a payload rejection from the backend
	// (400, 404, 409, 422). The record is not queued.
	ErrRecordRejected = errors.New("record rejected by server")

	ErrSessionExpired = errors.New("session expired")

	ErrQueueStorage = errors.New("sync queue storage failure")
	ErrCacheStorage = errors.New("cache storage failure")

	// ErrCacheRefresh is returned when at least one reference collection
	// could not be fetched. The stored snapshot is left untouched.
	ErrCacheRefresh = errors.New("cache refresh failed")

	// ErrSyncIncomplete marks a pass that left items for a later attempt.
	ErrSyncIncomplete = errors.New("sync pass incomplete")
)

// Development backend errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrCadetNotFound is returned when a record references a cadet that is
	// not on the roster.
	ErrCadetNotFound = errors.New("cadet not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
