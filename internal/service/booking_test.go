package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

func TestBookingService_CreateAndFilterByTrip(t *testing.T) {
	t.Parallel()

	e := newEnv(t, true)
	ctx := context.Background()

	res, err := e.bookings.Create(ctx, service.BookingRequest{
		TripID:   "2",
		Type:     "boat",
		Provider: "  Ferry Line ",
		Date:     "08 Mar",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingTypeOther, res.Item.Type)
	assert.Equal(t, "Ferry Line", res.Item.Provider)
	assert.Equal(t, res.Item.ID, res.List[len(res.List)-1].ID, "bookings are appended")

	tokyo := e.bookings.ListByTrip(ctx, "2")
	require.Len(t, tokyo, 2)
	assert.Len(t, e.bookings.ListByTrip(ctx, "1"), 2)
	assert.Empty(t, e.bookings.ListByTrip(ctx, "3"))
}

func TestBookingService_CreateValidation(t *testing.T) {
	t.Parallel()

	e := newEnv(t, false)
	ctx := context.Background()

	_, err := e.bookings.Create(ctx, service.BookingRequest{TripID: "1"})
	assert.ErrorIs(t, err, service.ErrProviderRequired)

	_, err = e.bookings.Create(ctx, service.BookingRequest{Provider: "Iberia"})
	assert.ErrorIs(t, err, service.ErrInvalidTripID)

	assert.Nil(t, e.store.Get(ctx, repository.KeyBookings))
}

func TestBookingService_Update(t *testing.T) {
	t.Parallel()

	e := newEnv(t, true)
	ctx := context.Background()
	e.bookings.List(ctx)
	before := rawRecords(t, e.store, repository.KeyBookings)

	res, err := e.bookings.Update(ctx, "b2", service.BookingRequest{
		TripID:    "1",
		Type:      domain.BookingTypeHotel,
		Provider:  "Hotel Saint-Germain",
		Reference: "SG-1",
		Date:      "10 Out",
		EndDate:   "24 Out",
	})
	require.NoError(t, err)

	assert.Equal(t, "b2", res.Item.ID)
	after := rawRecords(t, e.store, repository.KeyBookings)
	assert.Contains(t, after["b2"], "Hotel Saint-Germain")
	assert.Equal(t, before["b1"], after["b1"])
	assert.Equal(t, before["b3"], after["b3"])

	_, err = e.bookings.Update(ctx, "nope", service.BookingRequest{TripID: "1", Provider: "x"})
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

func TestBookingService_DeleteUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	e := newEnv(t, true)
	ctx := context.Background()
	before := e.bookings.List(ctx)

	after, err := e.bookings.Delete(ctx, "missing")
	require.NoError(t, err)

	assert.Equal(t, before, after)
	stored, _ := e.acc.Bookings.Get(ctx)
	assert.Equal(t, before, stored)
}

func TestBookingService_Delete(t *testing.T) {
	t.Parallel()

	e := newEnv(t, true)
	ctx := context.Background()
	e.bookings.List(ctx)

	after, err := e.bookings.Delete(ctx, "b1")
	require.NoError(t, err)

	assert.False(t, domain.Contains(after, "b1"))
	assert.Len(t, e.bookings.ListByTrip(ctx, "1"), 1)
}
