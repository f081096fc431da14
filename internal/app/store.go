package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripbook/internal/config"
	"tripbook/internal/kvstore"
	internalRedis "tripbook/internal/redis"
	"tripbook/internal/repository/postgres"
)

// Storage is the key-value store selected by configuration, with the
// connections it owns.
type Storage struct {
	Store       *kvstore.Store
	DB          *sql.DB
	RedisClient *redis.Client
	// Idempotency is nil unless the redis backend is in use.
	Idempotency *internalRedis.IdempotencyStore
}

// NewStorage connects the backend named by cfg.Store.Backend.
func NewStorage(ctx context.Context, cfg *config.Config, nrApp *newrelic.Application, logger *slog.Logger) (*Storage, error) {
	s := &Storage{}

	var backend kvstore.Backend
	switch cfg.Store.Backend {
	case config.BackendMemory:
		backend = kvstore.NewMemoryBackend()

	case config.BackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			return nil, err
		}
		s.RedisClient = client
		s.Idempotency = internalRedis.NewIdempotencyStore(client, cfg.Redis.KeyPrefix)
		backend = internalRedis.NewKVBackend(client, cfg.Redis.KeyPrefix)

	case config.BackendPostgres:
		db, err := NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		s.DB = db
		backend = postgres.NewKVBackend(db)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	s.Store = kvstore.New(backend, logger)
	logger.InfoContext(ctx, "store ready", "backend", cfg.Store.Backend)
	return s, nil
}

// Close releases the connections of the backend.
func (s *Storage) Close() error {
	var err error
	if s.DB != nil {
		err = s.DB.Close()
	}
	if s.RedisClient != nil {
		if cerr := s.RedisClient.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
