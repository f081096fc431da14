package service

import (
	"context"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// BookingService handles booking operations. Bookings of all trips live in
// one collection and are associated with a trip through tripId only.
type BookingService struct {
	acc    *repository.Accessors
	seeder *Seeder
	now    Clock
}

// NewBookingService creates a new BookingService.
func NewBookingService(acc *repository.Accessors, seeder *Seeder, clock Clock) *BookingService {
	return &BookingService{acc: acc, seeder: seeder, now: clockOrNow(clock)}
}

// BookingRequest contains the editable fields of a booking.
type BookingRequest struct {
	TripID    string
	Type      domain.BookingType
	Provider  string
	Reference string
	Date      string
	EndDate   string
	Details   string
}

// List returns the bookings of every trip.
func (s *BookingService) List(ctx context.Context) []domain.Booking {
	return loadOrSeed(ctx, s.seeder, s.acc.Bookings, sampleBookings)
}

// ListByTrip returns the bookings of one trip.
func (s *BookingService) ListByTrip(ctx context.Context, tripID string) []domain.Booking {
	return domain.FilterByTrip(s.List(ctx), tripID)
}

// BuildBooking validates req and constructs a new booking record.
func (s *BookingService) BuildBooking(req BookingRequest) (domain.Booking, error) {
	if err := validateBooking(req); err != nil {
		return domain.Booking{}, err
	}
	return bookingFromRequest(NewID(s.now()), req), nil
}

// Create appends a booking.
func (s *BookingService) Create(ctx context.Context, req BookingRequest) (Mutation[domain.Booking], error) {
	booking, err := s.BuildBooking(req)
	if err != nil {
		return Mutation[domain.Booking]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.Bookings, func(bookings []domain.Booking) ([]domain.Booking, error) {
		return domain.Append(bookings, booking), nil
	})
	return Mutation[domain.Booking]{Item: booking, List: list}, err
}

// Update replaces an existing booking.
func (s *BookingService) Update(ctx context.Context, id string, req BookingRequest) (Mutation[domain.Booking], error) {
	if err := validateBooking(req); err != nil {
		return Mutation[domain.Booking]{}, err
	}

	booking := bookingFromRequest(id, req)
	list, err := mutate(ctx, s.List, s.acc.Bookings, func(bookings []domain.Booking) ([]domain.Booking, error) {
		return replaceExisting(bookings, booking, ErrBookingNotFound)
	})
	return Mutation[domain.Booking]{Item: booking, List: list}, err
}

// Delete removes a booking. Deleting an unknown ID rewrites the list unchanged.
func (s *BookingService) Delete(ctx context.Context, id string) ([]domain.Booking, error) {
	return mutate(ctx, s.List, s.acc.Bookings, func(bookings []domain.Booking) ([]domain.Booking, error) {
		return domain.Remove(bookings, id), nil
	})
}

func validateBooking(req BookingRequest) error {
	if strings.TrimSpace(req.TripID) == "" {
		return ErrInvalidTripID
	}
	if strings.TrimSpace(req.Provider) == "" {
		return ErrProviderRequired
	}
	return nil
}

func bookingFromRequest(id string, req BookingRequest) domain.Booking {
	return domain.Booking{
		ID:        id,
		TripID:    req.TripID,
		Type:      domain.NormalizeBookingType(req.Type),
		Provider:  strings.TrimSpace(req.Provider),
		Reference: strings.TrimSpace(req.Reference),
		Date:      req.Date,
		EndDate:   req.EndDate,
		Details:   req.Details,
	}
}
