package service

import (
	"context"
	"fmt"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// selfTravelerID is the ID of the implicit traveler representing the user.
const selfTravelerID = "me"

// TripService handles trip operations.
type TripService struct {
	acc          *repository.Accessors
	seeder       *Seeder
	notification *NotificationService
	now          Clock
}

// NewTripService creates a new TripService. notification may be nil.
func NewTripService(acc *repository.Accessors, seeder *Seeder, notification *NotificationService, clock Clock) *TripService {
	return &TripService{acc: acc, seeder: seeder, notification: notification, now: clockOrNow(clock)}
}

// CreateTripRequest contains the parameters for creating a trip.
type CreateTripRequest struct {
	Destination string
	Country     string
	DateRange   string
	ImageURL    string
	Status      domain.TripStatus
	Notes       string
	Travelers   []domain.Traveler
}

// UpdateTripRequest contains the parameters for editing a trip. A nil
// Travelers keeps the current list.
type UpdateTripRequest struct {
	ID          string
	Destination string
	Country     string
	DateRange   string
	ImageURL    string
	Status      domain.TripStatus
	Notes       string
	Travelers   []domain.Traveler
}

// List returns all trips, seeding sample trips on first use.
func (s *TripService) List(ctx context.Context) []domain.Trip {
	return loadOrSeed(ctx, s.seeder, s.acc.Trips, sampleTrips)
}

// Get returns a single trip.
func (s *TripService) Get(ctx context.Context, id string) (domain.Trip, error) {
	if id == "" {
		return domain.Trip{}, ErrInvalidTripID
	}

	trip, ok := domain.Find(s.List(ctx), id)
	if !ok {
		return domain.Trip{}, ErrTripNotFound
	}
	return trip, nil
}

// BuildTrip validates req and constructs the new trip record. It performs no
// storage access besides reading the profile for the implicit self traveler.
func (s *TripService) BuildTrip(ctx context.Context, req CreateTripRequest) (domain.Trip, error) {
	if err := ValidateTrip(req.Destination, req.Status); err != nil {
		return domain.Trip{}, err
	}
	if req.Status == "" {
		req.Status = domain.TripStatusUpcoming
	}

	id := NewID(s.now())
	return domain.Trip{
		ID:          id,
		Destination: strings.TrimSpace(req.Destination),
		Country:     strings.TrimSpace(req.Country),
		DateRange:   strings.TrimSpace(req.DateRange),
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Notes:       req.Notes,
		Travelers:   s.withSelf(ctx, assignTravelerIDs(req.Travelers, id)),
	}, nil
}

// Create adds a trip at the head of the list.
func (s *TripService) Create(ctx context.Context, req CreateTripRequest) (Mutation[domain.Trip], error) {
	trip, err := s.BuildTrip(ctx, req)
	if err != nil {
		return Mutation[domain.Trip]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.Trips, func(trips []domain.Trip) ([]domain.Trip, error) {
		return domain.Prepend(trips, trip), nil
	})
	if err == nil && s.notification != nil {
		_ = s.notification.NotifyTripCreated(ctx, trip.Destination, s.Timing(trip))
	}
	return Mutation[domain.Trip]{Item: trip, List: list}, err
}

// Update replaces the editable fields of an existing trip. The cached media
// count is kept, and an empty Status keeps the current one.
func (s *TripService) Update(ctx context.Context, req UpdateTripRequest) (Mutation[domain.Trip], error) {
	if req.ID == "" {
		return Mutation[domain.Trip]{}, ErrInvalidTripID
	}
	if err := ValidateTrip(req.Destination, req.Status); err != nil {
		return Mutation[domain.Trip]{}, err
	}

	var updated domain.Trip
	list, err := mutate(ctx, s.List, s.acc.Trips, func(trips []domain.Trip) ([]domain.Trip, error) {
		current, ok := domain.Find(trips, req.ID)
		if !ok {
			return nil, ErrTripNotFound
		}

		updated = current
		updated.Destination = strings.TrimSpace(req.Destination)
		updated.Country = strings.TrimSpace(req.Country)
		updated.DateRange = strings.TrimSpace(req.DateRange)
		updated.ImageURL = req.ImageURL
		if req.Status != "" {
			updated.Status = req.Status
		}
		updated.Notes = req.Notes
		if req.Travelers != nil {
			updated.Travelers = assignTravelerIDs(req.Travelers, NewID(s.now()))
		}
		return domain.Replace(trips, updated), nil
	})
	return Mutation[domain.Trip]{Item: updated, List: list}, err
}

// Stats computes aggregates over the current trips.
func (s *TripService) Stats(ctx context.Context) TripStats {
	return ComputeTripStats(s.List(ctx))
}

// Timing returns the countdown label of a trip.
func (s *TripService) Timing(trip domain.Trip) string {
	return TimingLabel(trip.DateRange, trip.Status, s.now())
}

// ValidateTrip checks the fields shared by trip creation and editing. An
// empty status is accepted.
func ValidateTrip(destination string, status domain.TripStatus) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationRequired
	}
	if status != "" && !status.Valid() {
		return ErrInvalidTripStatus
	}
	return nil
}

// withSelf prepends the implicit self traveler unless one is present.
func (s *TripService) withSelf(ctx context.Context, travelers []domain.Traveler) []domain.Traveler {
	for _, t := range travelers {
		if t.IsMe {
			return travelers
		}
	}

	self := domain.Traveler{ID: selfTravelerID, Name: "Eu", IsMe: true}
	if profile, ok := s.acc.Profile.Get(ctx); ok {
		if profile.Name != "" {
			self.Name = profile.Name
		}
		self.Image = profile.AvatarURI
	}
	return domain.Prepend(travelers, self)
}

// assignTravelerIDs gives every traveler without an ID one derived from base.
func assignTravelerIDs(travelers []domain.Traveler, base string) []domain.Traveler {
	if travelers == nil {
		return nil
	}
	out := make([]domain.Traveler, 0, len(travelers))
	for i, t := range travelers {
		if t.ID == "" {
			t.ID = fmt.Sprintf("%s-%d", base, i+1)
		}
		out = append(out, t)
	}
	return out
}
