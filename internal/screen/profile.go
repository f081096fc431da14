package screen

import (
	"context"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// ProfileScreen shows the profile, trip statistics and memories.
type ProfileScreen struct {
	profileSvc *service.ProfileService
	memorySvc  *service.MemoryService

	profile  domain.Profile
	trips    *Local[domain.Trip]
	memories *Local[domain.Memory]
}

// NewProfileScreen creates a ProfileScreen.
func NewProfileScreen(profile *service.ProfileService, trips *service.TripService, memories *service.MemoryService, acc *repository.Accessors) *ProfileScreen {
	return &ProfileScreen{
		profileSvc: profile,
		memorySvc:  memories,
		trips:      NewLocal(acc.Trips, trips.List),
		memories:   NewLocal(acc.Memories, memories.List),
	}
}

// Focus re-reads the profile, trips and memories. Statistics are derived
// from what was just read.
func (s *ProfileScreen) Focus(ctx context.Context) service.TripStats {
	s.profile = s.profileSvc.Get(ctx)
	s.trips.Focus(ctx)
	s.memories.Focus(ctx)
	return s.Stats()
}

// Profile returns the profile as last read.
func (s *ProfileScreen) Profile() domain.Profile { return s.profile }

// Memories returns the screen's copy of the memories.
func (s *ProfileScreen) Memories() []domain.Memory { return s.memories.Items() }

// Stats computes the aggregates over the screen's copy of the trips.
func (s *ProfileScreen) Stats() service.TripStats {
	return service.ComputeTripStats(s.trips.Items())
}

// Save overwrites the stored profile with p.
func (s *ProfileScreen) Save(ctx context.Context, p domain.Profile) error {
	saved, err := s.profileSvc.Save(ctx, p)
	s.profile = saved
	return err
}

// AddMemory stores a photo and resynchronizes the trips' media counts.
func (s *ProfileScreen) AddMemory(ctx context.Context, req service.MemoryRequest) (domain.Memory, error) {
	memory, err := s.memorySvc.BuildMemory(req)
	if err != nil {
		return domain.Memory{}, err
	}
	if err := s.memories.Prepend(ctx, memory); err != nil {
		return memory, err
	}
	return memory, s.syncMediaCounts(ctx)
}

// DeleteMemory removes a photo and resynchronizes the trips' media counts.
func (s *ProfileScreen) DeleteMemory(ctx context.Context, id string) error {
	if err := s.memories.Remove(ctx, id); err != nil {
		return err
	}
	return s.syncMediaCounts(ctx)
}

func (s *ProfileScreen) syncMediaCounts(ctx context.Context) error {
	trips, err := s.memorySvc.SyncMediaCounts(ctx)
	if trips != nil {
		s.trips.items = trips
	}
	return err
}
