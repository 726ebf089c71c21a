package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore implements Store backed by Redis.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore creates a Redis-backed key-value store. It verifies
// connectivity with a ping before returning.
func NewRedisStore(ctx context.Context, cfg RedisConfig, logger zerolog.Logger) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger = logger.With().Str("store", "redis").Logger()
	logger.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis store connected")

	return &redisStore{
		client: client,
		logger: logger,
	}, nil
}

// Get retrieves the value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to get key")
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any existing value.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to set key")
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// List returns all keys with the given prefix using SCAN.
func (s *redisStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.Error().Err(err).Str("prefix", prefix).Msg("failed to scan keys")
		return nil, fmt.Errorf("failed to scan keys with prefix %s: %w", prefix, err)
	}

	return keys, nil
}

// Close releases the underlying Redis connection.
func (s *redisStore) Close() error {
	return s.client.Close()
}
