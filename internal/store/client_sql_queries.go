// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cadet-sync/models"
)

const (
	queueTable = "offline_sync_queue"
	cacheTable = "offline_cache"
	stateTable = "offline_state"
)

var queueColumns = []string{
	"seq",
	"temp_id",
	"type",
	"data",
	"attempts",
	"created_at",
	"last_attempt_at",
	"last_error",
}

func buildAppendQueueItemQuery(item models.SyncQueueItem, data []byte) (string, []any, error) {
	return builder.
		Insert(queueTable).
		Columns("temp_id", "type", "data", "attempts", "created_at", "last_error").
		Values(item.TempID(), string(item.Type), string(data), item.Attempts, item.CreatedAt, item.LastError).
		ToSql()
}

func buildListQueueQuery() (string, []any, error) {
	return builder.
		Select(queueColumns...).
		From(queueTable).
		OrderBy("seq ASC").
		ToSql()
}

func buildCountQueueQuery() (string, []any, error) {
	return builder.
		Select("COUNT(*)").
		From(queueTable).
		ToSql()
}

func buildRemoveQueueItemsQuery(tempIDs []string) (string, []any, error) {
	return builder.
		Delete(queueTable).
		Where(sq.Eq{"temp_id": tempIDs}).
		ToSql()
}

func buildBumpAttemptsQuery(tempID, lastError string, at time.Time) (string, []any, error) {
	return builder.
		Update(queueTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_attempt_at", at).
		Set("last_error", lastError).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

func buildUpsertCollectionQuery(collection models.Collection, data []byte, at time.Time) (string, []any, error) {
	return builder.
		Insert(cacheTable).
		Columns("collection", "data", "updated_at").
		Values(string(collection), string(data), at).
		Suffix("ON CONFLICT(collection) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
}

func buildLoadCacheQuery() (string, []any, error) {
	return builder.
		Select("collection", "data").
		From(cacheTable).
		ToSql()
}

func buildGetStateQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From(stateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetStateQuery(key, value string, at time.Time) (string, []any, error) {
	return builder.
		Insert(stateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return builder.
		Delete(stateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
