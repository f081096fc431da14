package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tripbook/internal/kvstore"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// tickingClock starts at start and advances one millisecond per call, so
// records created in a row get distinct IDs.
func tickingClock(start time.Time) service.Clock {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Millisecond)
		return now
	}
}

// switchBackend wraps a MemoryBackend and can be told to fail writes.
type switchBackend struct {
	*kvstore.MemoryBackend
	mu         sync.Mutex
	failWrites bool
}

func (b *switchBackend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	fail := b.failWrites
	b.mu.Unlock()
	if fail {
		return io.ErrShortWrite
	}
	return b.MemoryBackend.Set(ctx, key, value)
}

func (b *switchBackend) FailWrites(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWrites = v
}

type env struct {
	backend       *switchBackend
	store         *kvstore.Store
	acc           *repository.Accessors
	notifications *service.NotificationService

	trips      *service.TripService
	bookings   *service.BookingService
	tasks      *service.TaskService
	expenses   *service.ExpenseService
	timeline   *service.TimelineService
	memories   *service.MemoryService
	profile    *service.ProfileService
	budget     *service.BudgetService
	categories *service.CategoryService
}

var testStart = time.Date(2024, time.October, 1, 9, 30, 0, 0, time.UTC)

func newEnv(t *testing.T, seed bool) *env {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := &switchBackend{MemoryBackend: kvstore.NewMemoryBackend()}
	store := kvstore.New(backend, logger)
	acc := repository.NewAccessors(store)
	seeder := service.NewSeeder(seed)
	clock := tickingClock(testStart)
	notifications := service.NewNotificationService(logger)
	budget := service.NewBudgetService(acc, seeder, notifications)

	return &env{
		backend:       backend,
		store:         store,
		acc:           acc,
		notifications: notifications,
		trips:         service.NewTripService(acc, seeder, notifications, clock),
		bookings:      service.NewBookingService(acc, seeder, clock),
		tasks:         service.NewTaskService(acc, seeder, clock),
		expenses:      service.NewExpenseService(acc, seeder, budget, clock),
		timeline:      service.NewTimelineService(acc, seeder, clock),
		memories:      service.NewMemoryService(acc, seeder, clock),
		profile:       service.NewProfileService(acc, seeder),
		budget:        budget,
		categories:    service.NewCategoryService(acc, clock),
	}
}

// rawRecords returns the stored JSON of every record under key, by ID.
func rawRecords(t *testing.T, store *kvstore.Store, key string) map[string]string {
	t.Helper()

	raw := store.Get(context.Background(), key)
	require.NotNil(t, raw)

	var records []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &records))

	out := make(map[string]string, len(records))
	for _, r := range records {
		var head struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(r, &head))
		out[head.ID] = string(r)
	}
	return out
}
