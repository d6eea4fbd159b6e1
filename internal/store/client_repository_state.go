package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/logger"
)

type stateRepository struct {
	*DB
	logger *logger.Logger
}

func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *stateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetStateQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "stateRepository.Get").
			Str("key", key).
			Msg("failed to read state")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *stateRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetStateQuery(key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "stateRepository.Set").
			Str("key", key).
			Msg("failed to write state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *stateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "stateRepository.Delete").
			Str("key", key).
			Msg("failed to delete state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
