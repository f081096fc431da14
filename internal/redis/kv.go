package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"tripbook/internal/kvstore"
)

// DefaultKeyPrefix namespaces every key written by the store.
const DefaultKeyPrefix = "tripbook:"

const clearBatchSize = 100

// KVBackend is a kvstore.Backend over plain Redis strings.
type KVBackend struct {
	client *redis.Client
	prefix string
}

// NewKVBackend creates a KVBackend. An empty prefix uses DefaultKeyPrefix.
func NewKVBackend(client *redis.Client, prefix string) *KVBackend {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &KVBackend{client: client, prefix: prefix}
}

// Get retrieves the raw value stored under key.
func (s *KVBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set stores value under key without expiry.
func (s *KVBackend) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Remove deletes key.
func (s *KVBackend) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Clear deletes every key under the prefix. Other keys in the same Redis
// database are left alone.
func (s *KVBackend) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", clearBatchSize).Iterator()

	batch := make([]string, 0, clearBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearBatchSize {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(batch) > 0 {
		return s.client.Del(ctx, batch...).Err()
	}
	return nil
}

var _ kvstore.Backend = (*KVBackend)(nil)
