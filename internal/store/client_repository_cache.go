package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/models"
)

// cacheRepository stores one JSON array per reference collection in
// offline_cache and the snapshot timestamp in offline_state.
type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceSnapshot writes every collection and the timestamp in a single
// transaction, so readers see either the previous snapshot or the new one.
func (c *cacheRepository) ReplaceSnapshot(ctx context.Context, snapshot models.CacheSnapshot) error {
	log := logger.FromContext(ctx)

	ts := snapshot.Timestamp.UTC()
	if snapshot.Timestamp.IsZero() {
		ts = time.Now().UTC()
	}

	type statement struct {
		query string
		args  []any
	}
	statements := make([]statement, 0, len(models.Collections)+1)

	for _, collection := range models.Collections {
		entities := snapshot.Get(collection)
		if entities == nil {
			entities = []models.Entity{}
		}
		data, err := json.Marshal(entities)
		if err != nil {
			return fmt.Errorf("encode %s: %w", collection, err)
		}

		query, args, err := buildUpsertCollectionQuery(collection, data, ts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{query, args})
	}

	query, args, err := buildSetStateQuery(StateKeyCacheTimestamp, ts.Format(time.RFC3339Nano), ts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	statements = append(statements, statement{query, args})

	err = c.inTx(ctx, func(tx *sql.Tx) error {
		for _, st := range statements {
			if _, execErr := tx.ExecContext(ctx, st.query, st.args...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.ReplaceSnapshot").Msg("failed to replace cache snapshot")
		return err
	}

	return nil
}

func (c *cacheRepository) LoadSnapshot(ctx context.Context) (*models.CacheSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadCacheQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.LoadSnapshot").Msg("failed to query cache")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		snapshot models.CacheSnapshot
		found    bool
	)
	for rows.Next() {
		var collection, data string
		if err = rows.Scan(&collection, &data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var entities []models.Entity
		if err = json.Unmarshal([]byte(data), &entities); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.LoadSnapshot").
				Str("collection", collection).
				Msg("failed to decode cached collection")
			return nil, fmt.Errorf("%w: %s: %w", ErrCorruptedRow, collection, err)
		}
		snapshot.Set(models.Collection(collection), entities)
		found = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !found {
		return nil, nil
	}

	snapshot.Timestamp, err = c.loadTimestamp(ctx)
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (c *cacheRepository) loadTimestamp(ctx context.Context) (time.Time, error) {
	query, args, err := buildGetStateQuery(StateKeyCacheTimestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cache timestamp: %w", ErrCorruptedRow, err)
	}

	return ts, nil
}
