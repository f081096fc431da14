package service

import (
	"context"
	"log/slog"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// MemoryService handles trip photos and keeps the cached media counts of
// trips in step with them.
type MemoryService struct {
	acc    *repository.Accessors
	seeder *Seeder
	now    Clock
}

// NewMemoryService creates a new MemoryService.
func NewMemoryService(acc *repository.Accessors, seeder *Seeder, clock Clock) *MemoryService {
	return &MemoryService{acc: acc, seeder: seeder, now: clockOrNow(clock)}
}

// MemoryRequest contains the fields of a new memory. Trip is the
// destination of the trip the photo belongs to.
type MemoryRequest struct {
	Trip  string
	Image string
	Date  string
}

// List returns all memories.
func (s *MemoryService) List(ctx context.Context) []domain.Memory {
	return loadOrSeed(ctx, s.seeder, s.acc.Memories, sampleMemories)
}

// ListByTrip returns the memories attached to a destination.
func (s *MemoryService) ListByTrip(ctx context.Context, destination string) []domain.Memory {
	out := make([]domain.Memory, 0)
	for _, m := range s.List(ctx) {
		if m.Trip == destination {
			out = append(out, m)
		}
	}
	return out
}

// BuildMemory validates req and constructs a new memory record.
func (s *MemoryService) BuildMemory(req MemoryRequest) (domain.Memory, error) {
	if strings.TrimSpace(req.Image) == "" {
		return domain.Memory{}, ErrImageRequired
	}
	if strings.TrimSpace(req.Trip) == "" {
		return domain.Memory{}, ErrDestinationRequired
	}

	now := s.now()
	memory := domain.Memory{
		ID:    NewID(now),
		Trip:  strings.TrimSpace(req.Trip),
		Image: req.Image,
		Date:  req.Date,
	}
	if memory.Date == "" {
		memory.Date = now.Format(expenseDateLayout)
	}
	return memory, nil
}

// Add stores a memory at the head of the list and resynchronizes media counts.
func (s *MemoryService) Add(ctx context.Context, req MemoryRequest) (Mutation[domain.Memory], error) {
	memory, err := s.BuildMemory(req)
	if err != nil {
		return Mutation[domain.Memory]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.Memories, func(memories []domain.Memory) ([]domain.Memory, error) {
		return domain.Prepend(memories, memory), nil
	})
	if err != nil {
		return Mutation[domain.Memory]{Item: memory, List: list}, err
	}

	_, err = s.syncFrom(ctx, list)
	return Mutation[domain.Memory]{Item: memory, List: list}, err
}

// Delete removes a memory and resynchronizes media counts.
func (s *MemoryService) Delete(ctx context.Context, id string) ([]domain.Memory, error) {
	list, err := mutate(ctx, s.List, s.acc.Memories, func(memories []domain.Memory) ([]domain.Memory, error) {
		return domain.Remove(memories, id), nil
	})
	if err != nil {
		return list, err
	}

	_, err = s.syncFrom(ctx, list)
	return list, err
}

// SyncMediaCounts recomputes every trip's mediaCount from the stored
// memories and rewrites the Trips collection. It must run after every
// change to memories; nothing else keeps the cached counts current.
func (s *MemoryService) SyncMediaCounts(ctx context.Context) ([]domain.Trip, error) {
	return s.syncFrom(ctx, s.List(ctx))
}

func (s *MemoryService) trips(ctx context.Context) []domain.Trip {
	return loadOrSeed(ctx, s.seeder, s.acc.Trips, sampleTrips)
}

func (s *MemoryService) syncFrom(ctx context.Context, memories []domain.Memory) ([]domain.Trip, error) {
	counts := CountMediaByTrip(memories)
	trips, err := mutate(ctx, s.trips, s.acc.Trips, func(trips []domain.Trip) ([]domain.Trip, error) {
		return ApplyMediaCounts(trips, counts), nil
	})
	if err != nil {
		slog.WarnContext(ctx, "media counts not saved", "error", err)
	}
	return trips, err
}
