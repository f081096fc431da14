package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripbook/internal/config"
)

// NewRedisClient creates the client of the redis store backend. If nrApp is
// provided, every command is recorded as a datastore segment.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if nrApp != nil {
		client.AddHook(&nrRedisHook{prefix: cfg.KeyPrefix})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// nrRedisHook implements redis.Hook for New Relic instrumentation. Segments
// are named after the collection key the command touches.
type nrRedisHook struct {
	prefix string
}

func (h *nrRedisHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *nrRedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if txn := newrelic.FromContext(ctx); txn != nil {
			segment := newrelic.DatastoreSegment{
				StartTime:  txn.StartSegmentNow(),
				Product:    newrelic.DatastoreRedis,
				Operation:  cmd.Name(),
				Collection: h.collection(cmd),
			}
			defer segment.End()
		}
		return next(ctx, cmd)
	}
}

func (h *nrRedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if txn := newrelic.FromContext(ctx); txn != nil {
			segment := newrelic.DatastoreSegment{
				StartTime:  txn.StartSegmentNow(),
				Product:    newrelic.DatastoreRedis,
				Operation:  "pipeline",
				Collection: "kv",
			}
			defer segment.End()
		}
		return next(ctx, cmds)
	}
}

// collection returns the unprefixed key of cmd, folding per-trip timeline
// keys and idempotency entries into one name each.
func (h *nrRedisHook) collection(cmd redis.Cmder) string {
	args := cmd.Args()
	if len(args) < 2 {
		return "kv"
	}
	key, ok := args[1].(string)
	if !ok || !strings.HasPrefix(key, h.prefix) {
		return "kv"
	}
	key = strings.TrimPrefix(key, h.prefix)
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	if strings.HasPrefix(key, "trip_events_") {
		return "trip_events"
	}
	return key
}
