package app

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNRRedisHook_Collection(t *testing.T) {
	t.Parallel()

	h := &nrRedisHook{prefix: "tripbook:"}
	ctx := context.Background()

	tests := []struct {
		cmd  redis.Cmder
		want string
	}{
		{redis.NewStringCmd(ctx, "get", "tripbook:trips"), "trips"},
		{redis.NewStringCmd(ctx, "set", "tripbook:trip_events_1712345678901", "[]"), "trip_events"},
		{redis.NewStringCmd(ctx, "get", "tripbook:idempotency:abc"), "idempotency"},
		{redis.NewStringCmd(ctx, "get", "other:trips"), "kv"},
		{redis.NewScanCmd(ctx, nil, "scan", uint64(0), "match", "tripbook:*"), "kv"},
		{redis.NewStatusCmd(ctx, "ping"), "kv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.collection(tt.cmd), tt.cmd.String())
	}
}
