package screen_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbook/internal/domain"
	"tripbook/internal/kvstore"
	"tripbook/internal/repository"
	"tripbook/internal/screen"
	"tripbook/internal/service"
)

type flakyBackend struct {
	*kvstore.MemoryBackend
	fail atomic.Bool
}

func (b *flakyBackend) Set(ctx context.Context, key string, value []byte) error {
	if b.fail.Load() {
		return errors.New("quota exceeded")
	}
	return b.MemoryBackend.Set(ctx, key, value)
}

type app struct {
	backend *flakyBackend
	acc     *repository.Accessors
	svc     screen.DetailServices
	profile *service.ProfileService
	memory  *service.MemoryService
}

func newApp(t *testing.T) *app {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := &flakyBackend{MemoryBackend: kvstore.NewMemoryBackend()}
	acc := repository.NewAccessors(kvstore.New(backend, logger))
	seeder := service.NewSeeder(true)

	var tick atomic.Int64
	start := time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		return start.Add(time.Duration(tick.Add(1)) * time.Millisecond)
	}

	return &app{
		backend: backend,
		acc:     acc,
		svc: screen.DetailServices{
			Trips:    service.NewTripService(acc, seeder, nil, clock),
			Bookings: service.NewBookingService(acc, seeder, clock),
			Tasks:    service.NewTaskService(acc, seeder, clock),
			Expenses: service.NewExpenseService(acc, seeder, nil, clock),
			Timeline: service.NewTimelineService(acc, seeder, clock),
		},
		profile: service.NewProfileService(acc, seeder),
		memory:  service.NewMemoryService(acc, seeder, clock),
	}
}

func (a *app) tripsScreen() *screen.TripsScreen {
	return screen.NewTripsScreen(a.svc.Trips, a.acc)
}

func (a *app) storedTripIDs(t *testing.T) []string {
	t.Helper()

	trips, ok := a.acc.Trips.Get(context.Background())
	require.True(t, ok)
	ids := make([]string, len(trips))
	for i, trip := range trips {
		ids[i] = trip.ID
	}
	return ids
}

func TestTripsScreens_LastWriteWins(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	screenA := a.tripsScreen()
	screenB := a.tripsScreen()

	screenA.Focus(ctx)
	screenB.Focus(ctx)

	require.NoError(t, screenB.Delete(ctx, "2"))
	assert.Equal(t, []string{"1", "3"}, a.storedTripIDs(t))

	added, err := screenA.Create(ctx, service.CreateTripRequest{Destination: "Roma, Itália", Country: "Itália"})
	require.NoError(t, err)

	assert.Equal(t, []string{added.ID, "1", "2", "3"}, a.storedTripIDs(t), "the deleted trip is written back")
	assert.Len(t, screenB.Trips(), 2, "B keeps its stale copy until focus")

	screenB.Focus(ctx)
	assert.Len(t, screenB.Trips(), 4)
}

func TestTripsScreen_CardsAndEdit(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	s := a.tripsScreen()
	s.Focus(ctx)

	cards := s.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, "Faltam 9 dias", cards[0].Timing)
	assert.Equal(t, service.LabelFinished, cards[2].Timing)

	edited, err := s.Edit(ctx, service.UpdateTripRequest{ID: "2", Destination: "Quioto, Japão", Country: "Japão", DateRange: "05 Mar - 20 Mar, 2025"})
	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusPlanning, edited.Status)

	stored, err := a.svc.Trips.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Quioto, Japão", stored.Destination)

	_, err = s.Edit(ctx, service.UpdateTripRequest{ID: "404", Destination: "x"})
	assert.ErrorIs(t, err, service.ErrTripNotFound)

	_, err = s.Create(ctx, service.CreateTripRequest{Destination: " "})
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Len(t, a.storedTripIDs(t), 3)
}

func TestTripDetailScreen_RefiltersAfterMutation(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	detail := screen.NewTripDetailScreen("1", a.svc, a.acc)
	require.NoError(t, detail.Focus(ctx))

	assert.Len(t, detail.Bookings(), 2)
	done, total := detail.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)

	booking, err := detail.AddBooking(ctx, service.BookingRequest{TripID: "2", Type: domain.BookingTypeTour, Provider: "Paris Walks"})
	require.NoError(t, err)
	assert.Equal(t, "1", booking.TripID, "bookings belong to the open trip")
	assert.Len(t, detail.Bookings(), 3)

	all, ok := a.acc.Bookings.Get(ctx)
	require.True(t, ok)
	assert.Len(t, all, 4, "the whole collection is written")

	task, err := detail.AddTask(ctx, "Trocar euros")
	require.NoError(t, err)
	_, err = detail.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	done, total = detail.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 4, total)

	_, err = detail.AddExpense(ctx, service.ExpenseRequest{Description: "Museu do Louvre", Amount: "22,00", Category: domain.CategoryActivities})
	require.NoError(t, err)
	assert.InDelta(t, 5072.5, detail.ExpenseSummary().Total, 1e-9)
	assert.Len(t, a.svc.Expenses.ListByTrip(ctx, "3"), 1)
}

func TestTripDetailScreen_TimelineOrdered(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	detail := screen.NewTripDetailScreen("1", a.svc, a.acc)
	require.NoError(t, detail.Focus(ctx))

	_, err := detail.AddEvent(ctx, service.EventRequest{Time: "07:00", Title: "Café da manhã", Type: domain.EventTypeRestaurant})
	require.NoError(t, err)

	events := detail.Events()
	require.Len(t, events, 4)
	assert.Equal(t, "07:00", events[0].Time)

	stored, ok := a.acc.TripEvents("1").Get(ctx)
	require.True(t, ok)
	assert.Equal(t, events, stored)

	require.NoError(t, detail.DeleteEvent(ctx, "e1"))
	assert.Len(t, detail.Events(), 3)
}

func TestTripDetailScreen_ValidationWritesNothing(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	detail := screen.NewTripDetailScreen("1", a.svc, a.acc)
	require.NoError(t, detail.Focus(ctx))
	before, _ := a.acc.Bookings.Get(ctx)

	_, err := detail.AddBooking(ctx, service.BookingRequest{Provider: "  "})
	assert.ErrorIs(t, err, service.ErrProviderRequired)

	_, err = detail.AddEvent(ctx, service.EventRequest{Time: "10:00"})
	assert.ErrorIs(t, err, service.ErrTitleRequired)

	after, _ := a.acc.Bookings.Get(ctx)
	assert.Equal(t, before, after)
	assert.Len(t, detail.Events(), 3)
}

func TestTripDetailScreen_KeepsStateWhenWriteFails(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	detail := screen.NewTripDetailScreen("1", a.svc, a.acc)
	require.NoError(t, detail.Focus(ctx))

	a.backend.fail.Store(true)
	task, err := detail.AddTask(ctx, "Seguro viagem")

	assert.ErrorIs(t, err, service.ErrNotPersisted)
	assert.True(t, domain.Contains(detail.Tasks(), task.ID))

	stored, _ := a.acc.Tasks.Get(ctx)
	assert.False(t, domain.Contains(stored, task.ID))
}

func TestTripDetailScreen_UnknownTrip(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	detail := screen.NewTripDetailScreen("404", a.svc, a.acc)

	assert.ErrorIs(t, detail.Focus(context.Background()), service.ErrTripNotFound)
}

func TestProfileScreen_StatsAndMediaSync(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	ctx := context.Background()
	p := screen.NewProfileScreen(a.profile, a.svc.Trips, a.memory, a.acc)

	stats := p.Focus(ctx)
	assert.Equal(t, 3, stats.TripCount)
	assert.Equal(t, 3, stats.CountryCount)
	assert.Equal(t, 5, stats.MediaCount)
	assert.Equal(t, "Viajante", p.Profile().Name)

	_, err := p.AddMemory(ctx, service.MemoryRequest{Trip: "Tóquio, Japão", Image: "file:///shibuya.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stats().MediaCount)

	tokyo, err := a.svc.Trips.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, tokyo.MediaCount)

	require.NoError(t, p.DeleteMemory(ctx, "m1"))
	assert.Equal(t, 5, p.Stats().MediaCount)
	assert.Len(t, p.Memories(), 5)

	_, err = p.AddMemory(ctx, service.MemoryRequest{Trip: "Paris, França"})
	assert.ErrorIs(t, err, service.ErrImageRequired)

	require.NoError(t, p.Save(ctx, domain.Profile{Name: "Marina"}))
	assert.Equal(t, "Marina", a.profile.Get(ctx).Name)
}
