package service

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

var eventTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TimelineService handles itinerary events. Each trip keeps its events under
// its own key.
type TimelineService struct {
	acc    *repository.Accessors
	seeder *Seeder
	now    Clock
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(acc *repository.Accessors, seeder *Seeder, clock Clock) *TimelineService {
	return &TimelineService{acc: acc, seeder: seeder, now: clockOrNow(clock)}
}

// EventRequest contains the editable fields of a timeline event.
type EventRequest struct {
	Time        string
	Title       string
	Description string
	Type        domain.EventType
	Status      string
	StatusLabel string
	MapURL      string
}

// List returns the timeline of a trip ordered by time.
func (s *TimelineService) List(ctx context.Context, tripID string) ([]domain.TimelineEvent, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	return s.loader(tripID)(ctx), nil
}

func (s *TimelineService) loader(tripID string) func(context.Context) []domain.TimelineEvent {
	return func(ctx context.Context) []domain.TimelineEvent {
		return loadOrSeed(ctx, s.seeder, s.acc.TripEvents(tripID), sampleEvents(tripID))
	}
}

// BuildEvent validates req and constructs a new event record.
func (s *TimelineService) BuildEvent(req EventRequest) (domain.TimelineEvent, error) {
	return eventFromRequest(NewID(s.now()), req)
}

// Create adds an event to a trip's timeline.
func (s *TimelineService) Create(ctx context.Context, tripID string, req EventRequest) (Mutation[domain.TimelineEvent], error) {
	if tripID == "" {
		return Mutation[domain.TimelineEvent]{}, ErrInvalidTripID
	}
	event, err := s.BuildEvent(req)
	if err != nil {
		return Mutation[domain.TimelineEvent]{}, err
	}

	list, err := mutate(ctx, s.loader(tripID), s.acc.TripEvents(tripID), func(events []domain.TimelineEvent) ([]domain.TimelineEvent, error) {
		return SortEvents(domain.Append(events, event)), nil
	})
	return Mutation[domain.TimelineEvent]{Item: event, List: list}, err
}

// Update replaces an event of a trip's timeline.
func (s *TimelineService) Update(ctx context.Context, tripID, id string, req EventRequest) (Mutation[domain.TimelineEvent], error) {
	if tripID == "" {
		return Mutation[domain.TimelineEvent]{}, ErrInvalidTripID
	}
	event, err := eventFromRequest(id, req)
	if err != nil {
		return Mutation[domain.TimelineEvent]{}, err
	}

	list, err := mutate(ctx, s.loader(tripID), s.acc.TripEvents(tripID), func(events []domain.TimelineEvent) ([]domain.TimelineEvent, error) {
		next, err := replaceExisting(events, event, ErrEventNotFound)
		if err != nil {
			return nil, err
		}
		return SortEvents(next), nil
	})
	return Mutation[domain.TimelineEvent]{Item: event, List: list}, err
}

// Delete removes an event from a trip's timeline.
func (s *TimelineService) Delete(ctx context.Context, tripID, id string) ([]domain.TimelineEvent, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	return mutate(ctx, s.loader(tripID), s.acc.TripEvents(tripID), func(events []domain.TimelineEvent) ([]domain.TimelineEvent, error) {
		return SortEvents(domain.Remove(events, id)), nil
	})
}

// SortEvents orders events by their "HH:mm" time using plain string
// comparison. Events sharing a time keep their relative order.
func SortEvents(events []domain.TimelineEvent) []domain.TimelineEvent {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	return events
}

func eventFromRequest(id string, req EventRequest) (domain.TimelineEvent, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.TimelineEvent{}, ErrTitleRequired
	}
	t := strings.TrimSpace(req.Time)
	if t != "" && !eventTimePattern.MatchString(t) {
		return domain.TimelineEvent{}, ErrInvalidEventTime
	}

	return domain.TimelineEvent{
		ID:          id,
		Time:        t,
		Title:       title,
		Description: req.Description,
		Type:        domain.NormalizeEventType(req.Type),
		Status:      req.Status,
		StatusLabel: req.StatusLabel,
		MapURL:      req.MapURL,
	}, nil
}
