package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/models"
)

// queueRepository is the SQLite-backed implementation of [QueueRepository]
// over the offline_sync_queue table.
type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueRepository) Append(ctx context.Context, item models.SyncQueueItem) (models.SyncQueueItem, error) {
	log := logger.FromContext(ctx)

	data, err := item.MarshalData()
	if err != nil {
		return models.SyncQueueItem{}, err
	}

	query, args, err := buildAppendQueueItemQuery(item, data)
	if err != nil {
		return models.SyncQueueItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = q.inTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		item.Seq, execErr = res.LastInsertId()
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.SyncQueueItem{}, fmt.Errorf("%w: %s", ErrDuplicateTempID, item.TempID())
		}
		log.Err(err).
			Str("func", "queueRepository.Append").
			Str("temp_id", item.TempID()).
			Str("type", string(item.Type)).
			Msg("failed to insert sync queue item")
		return models.SyncQueueItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

func (q *queueRepository) List(ctx context.Context) ([]models.SyncQueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQueueQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "queueRepository.List").Msg("failed to query sync queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SyncQueueItem, 0, 16)
	for rows.Next() {
		var (
			item          models.SyncQueueItem
			tempID        string
			itemType      string
			data          string
			lastAttemptAt sql.NullTime
		)

		scanErr := rows.Scan(
			&item.Seq,
			&tempID,
			&itemType,
			&data,
			&item.Attempts,
			&item.CreatedAt,
			&lastAttemptAt,
			&item.LastError,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "queueRepository.List").Msg("failed to scan sync queue row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.Type = models.ItemType(itemType)
		if decodeErr := item.UnmarshalData([]byte(data)); decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "queueRepository.List").
				Int64("seq", item.Seq).
				Str("temp_id", tempID).
				Msg("failed to decode sync queue payload")
			return nil, fmt.Errorf("%w: seq %d: %w", ErrCorruptedRow, item.Seq, decodeErr)
		}
		// the column is authoritative for the idempotency token
		item.SetTempID(tempID)
		if lastAttemptAt.Valid {
			t := lastAttemptAt.Time
			item.LastAttemptAt = &t
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "queueRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (q *queueRepository) Count(ctx context.Context) (int, error) {
	query, args, err := buildCountQueueQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = q.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "queueRepository.Count").Msg("failed to count sync queue")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Commit deletes outcome.Remove and bumps the attempt counter of every key in
// outcome.Failed. Unknown temp_ids are ignored so rows appended after the
// pass started are never touched.
func (q *queueRepository) Commit(ctx context.Context, outcome models.QueueOutcome) error {
	if outcome.IsEmpty() {
		return nil
	}
	log := logger.FromContext(ctx)

	at := outcome.AttemptAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	failedIDs := make([]string, 0, len(outcome.Failed))
	for tempID := range outcome.Failed {
		failedIDs = append(failedIDs, tempID)
	}
	slices.Sort(failedIDs)

	err := q.inTx(ctx, func(tx *sql.Tx) error {
		if len(outcome.Remove) > 0 {
			query, args, err := buildRemoveQueueItemsQuery(outcome.Remove)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: remove: %w", ErrExecutingStatement, err)
			}
		}

		for _, tempID := range failedIDs {
			query, args, err := buildBumpAttemptsQuery(tempID, outcome.Failed[tempID], at)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: bump attempts %s: %w", ErrExecutingStatement, tempID, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Commit").
			Int("removed", len(outcome.Remove)).
			Int("failed", len(failedIDs)).
			Msg("failed to commit sync pass outcome")
		return err
	}

	return nil
}
