package screen

import (
	"context"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// TripCard is a trip as listed on the trips screen.
type TripCard struct {
	Trip   domain.Trip
	Timing string
}

// TripsScreen is the list of trips.
type TripsScreen struct {
	svc   *service.TripService
	trips *Local[domain.Trip]
}

// NewTripsScreen creates a TripsScreen. Nothing is loaded until Focus.
func NewTripsScreen(svc *service.TripService, acc *repository.Accessors) *TripsScreen {
	return &TripsScreen{
		svc:   svc,
		trips: NewLocal(acc.Trips, svc.List),
	}
}

// Focus re-reads the trips.
func (s *TripsScreen) Focus(ctx context.Context) []domain.Trip {
	return s.trips.Focus(ctx)
}

// Trips returns the screen's copy.
func (s *TripsScreen) Trips() []domain.Trip {
	return s.trips.Items()
}

// Cards returns the trips with their timing labels.
func (s *TripsScreen) Cards() []TripCard {
	trips := s.trips.Items()
	cards := make([]TripCard, 0, len(trips))
	for _, t := range trips {
		cards = append(cards, TripCard{Trip: t, Timing: s.svc.Timing(t)})
	}
	return cards
}

// Create adds a trip to the head of the screen's copy and writes the copy.
func (s *TripsScreen) Create(ctx context.Context, req service.CreateTripRequest) (domain.Trip, error) {
	trip, err := s.svc.BuildTrip(ctx, req)
	if err != nil {
		return domain.Trip{}, err
	}
	return trip, s.trips.Prepend(ctx, trip)
}

// Edit replaces the editable fields of a trip in the screen's copy.
func (s *TripsScreen) Edit(ctx context.Context, req service.UpdateTripRequest) (domain.Trip, error) {
	if err := service.ValidateTrip(req.Destination, req.Status); err != nil {
		return domain.Trip{}, err
	}
	return s.trips.Update(ctx, req.ID, func(t domain.Trip) domain.Trip {
		t.Destination = strings.TrimSpace(req.Destination)
		t.Country = req.Country
		t.DateRange = req.DateRange
		t.ImageURL = req.ImageURL
		if req.Status != "" {
			t.Status = req.Status
		}
		t.Notes = req.Notes
		if req.Travelers != nil {
			t.Travelers = req.Travelers
		}
		return t
	}, service.ErrTripNotFound)
}

// Delete drops a trip from the screen's copy and writes the copy.
func (s *TripsScreen) Delete(ctx context.Context, id string) error {
	return s.trips.Remove(ctx, id)
}
