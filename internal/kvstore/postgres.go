package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresStore implements Store backed by a single PostgreSQL
// key-value table.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// Schema is the DDL for the key-value table. Applied by migrations
// and by the integration test harness.
const Schema = `
CREATE TABLE IF NOT EXISTS kv_records (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgresStore creates a Postgres-backed key-value store on top
// of an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) Store {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

// Get retrieves the value stored under key.
func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_records
		WHERE key = $1
	`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to query record")
		return nil, fmt.Errorf("failed to query record %s: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any existing value.
func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to upsert record")
		return fmt.Errorf("failed to upsert record %s: %w", key, err)
	}

	return nil
}

// Delete removes the value stored under key.
func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_records
		WHERE key = $1
	`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete record")
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}

	return nil
}

// List returns all keys with the given prefix.
func (s *postgresStore) List(ctx context.Context, prefix string) ([]string, error) {
	query := `
		SELECT key
		FROM kv_records
		WHERE key LIKE $1 || '%'
		ORDER BY key
	`

	rows, err := s.pool.Query(ctx, query, prefix)
	if err != nil {
		s.logger.Error().Err(err).Str("prefix", prefix).Msg("failed to query keys")
		return nil, fmt.Errorf("failed to query keys with prefix %s: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			s.logger.Error().Err(err).Msg("failed to scan key row")
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating key rows")
		return nil, fmt.Errorf("error iterating keys: %w", err)
	}

	return keys, nil
}

// Close releases the underlying connection pool.
func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
