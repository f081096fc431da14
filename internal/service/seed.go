package service

import (
	"context"
	"log/slog"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// Seeder writes sample data the first time a collection is read, so a fresh
// install never starts empty. Seeding only happens when the key is absent:
// an empty list is a valid state and is never re-seeded.
type Seeder struct {
	enabled bool
}

// NewSeeder creates a Seeder. A disabled Seeder reads absent keys as empty
// and writes nothing.
func NewSeeder(enabled bool) *Seeder {
	return &Seeder{enabled: enabled}
}

func loadOrSeed[T any](ctx context.Context, s *Seeder, c repository.Collection[T], sample func() []T) []T {
	items, ok := c.Get(ctx)
	if ok {
		return items
	}
	if s == nil || !s.enabled || sample == nil {
		return []T{}
	}

	items = sample()
	if !c.Set(ctx, items) {
		slog.WarnContext(ctx, "sample data not saved", "key", c.Key())
	}
	return items
}

func loadOrSeedDocument[T any](ctx context.Context, s *Seeder, d repository.Document[T], sample T) T {
	v, ok := d.Get(ctx)
	if ok {
		return v
	}
	if s == nil || !s.enabled {
		return sample
	}
	if !d.Set(ctx, sample) {
		slog.WarnContext(ctx, "sample data not saved", "key", d.Key())
	}
	return sample
}

// Sample trip IDs.
const (
	sampleTripParis  = "1"
	sampleTripTokyo  = "2"
	sampleTripLisbon = "3"
)

func sampleTrips() []domain.Trip {
	return []domain.Trip{
		{
			ID:          sampleTripParis,
			Destination: "Paris, França",
			Country:     "França",
			DateRange:   "10 Out - 24 Out, 2024",
			ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
			Status:      domain.TripStatusUpcoming,
			MediaCount:  3,
			Notes:       "Reservar jantar na Torre Eiffel",
			Travelers: []domain.Traveler{
				{ID: "me", Name: "Eu", IsMe: true},
				{ID: "t1", Name: "Ana", Image: "https://i.pravatar.cc/150?img=5"},
			},
		},
		{
			ID:          sampleTripTokyo,
			Destination: "Tóquio, Japão",
			Country:     "Japão",
			DateRange:   "05 Mar - 20 Mar, 2025",
			ImageURL:    "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf",
			Status:      domain.TripStatusPlanning,
		},
		{
			ID:          sampleTripLisbon,
			Destination: "Lisboa, Portugal",
			Country:     "Portugal",
			DateRange:   "12 Jun - 19 Jun, 2023",
			ImageURL:    "https://images.unsplash.com/photo-1585208798174-6cedd86e019a",
			Status:      domain.TripStatusPast,
			MediaCount:  2,
		},
	}
}

func sampleBookings() []domain.Booking {
	return []domain.Booking{
		{ID: "b1", TripID: sampleTripParis, Type: domain.BookingTypeFlight, Provider: "Air France", Reference: "AF1234", Date: "10 Out, 08:45", Details: "GRU → CDG, assento 14A"},
		{ID: "b2", TripID: sampleTripParis, Type: domain.BookingTypeHotel, Provider: "Hotel Le Marais", Reference: "HM-99812", Date: "10 Out", EndDate: "24 Out", Details: "Quarto duplo, café incluso"},
		{ID: "b3", TripID: sampleTripTokyo, Type: domain.BookingTypeTicket, Provider: "JR Pass", Reference: "JR-7-DAY", Date: "06 Mar", Details: "Passe de 7 dias"},
	}
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "k1", TripID: sampleTripParis, Text: "Renovar passaporte", Completed: true},
		{ID: "k2", TripID: sampleTripParis, Text: "Comprar adaptador de tomada"},
		{
			ID: "k3", TripID: sampleTripParis, Text: "Fazer as malas",
			Subtasks: []domain.Task{
				{ID: "k3-1", TripID: sampleTripParis, Text: "Roupas de frio"},
				{ID: "k3-2", TripID: sampleTripParis, Text: "Carregadores"},
			},
		},
		{ID: "k4", TripID: sampleTripTokyo, Text: "Pesquisar restaurantes"},
	}
}

func sampleExpenses() []domain.Expense {
	return []domain.Expense{
		{ID: "x1", TripID: sampleTripParis, Description: "Passagem aérea", Amount: 3200, Category: domain.CategoryTransport, Date: "02 Set, 2024"},
		{ID: "x2", TripID: sampleTripParis, Description: "Hotel Le Marais", Amount: 1850.5, Category: domain.CategoryLodging, Date: "03 Set, 2024"},
		{ID: "x3", TripID: sampleTripLisbon, Description: "Pastéis de Belém", Amount: 24.9, Category: domain.CategoryFood, Date: "13 Jun, 2023"},
	}
}

func sampleMemories() []domain.Memory {
	return []domain.Memory{
		{ID: "m1", Trip: "Paris, França", Image: "https://images.unsplash.com/photo-1499856871958-5b9627545d1a", Date: "11 Out, 2024"},
		{ID: "m2", Trip: "Paris, França", Image: "https://images.unsplash.com/photo-1431274172761-fca41d930114", Date: "12 Out, 2024"},
		{ID: "m3", Trip: "Paris, França", Image: "https://images.unsplash.com/photo-1520939817895-060bdaf4fe1b", Date: "14 Out, 2024"},
		{ID: "m4", Trip: "Lisboa, Portugal", Image: "https://images.unsplash.com/photo-1555881400-74d7acaacd8b", Date: "13 Jun, 2023"},
		{ID: "m5", Trip: "Lisboa, Portugal", Image: "https://images.unsplash.com/photo-1548707309-dcebeab9ea9b", Date: "15 Jun, 2023"},
	}
}

// sampleEvents returns the seeded timeline of tripID. Only the sample trips
// have one; any other trip starts with an empty timeline.
func sampleEvents(tripID string) func() []domain.TimelineEvent {
	switch tripID {
	case sampleTripParis:
		return func() []domain.TimelineEvent {
			return []domain.TimelineEvent{
				{ID: "e1", Time: "08:45", Title: "Voo para Paris", Description: "Air France AF1234", Type: domain.EventTypeFlight, Status: "confirmed", StatusLabel: "Confirmado"},
				{ID: "e2", Time: "14:00", Title: "Check-in no hotel", Description: "Hotel Le Marais", Type: domain.EventTypeHotel},
				{ID: "e3", Time: "19:30", Title: "Jantar no Marais", Description: "Bistrô local", Type: domain.EventTypeRestaurant, MapURL: "https://maps.google.com/?q=Le+Marais"},
			}
		}
	case sampleTripTokyo:
		return func() []domain.TimelineEvent {
			return []domain.TimelineEvent{
				{ID: "e4", Time: "10:00", Title: "Templo Senso-ji", Description: "Asakusa", Type: domain.EventTypeSightseeing},
			}
		}
	}
	return nil
}

func defaultProfile() domain.Profile {
	return domain.Profile{Name: "Viajante", AvatarURI: "https://i.pravatar.cc/300"}
}

func defaultBudget() domain.BudgetConfig {
	return domain.BudgetConfig{TotalLimit: 10000, AlertThreshold: 80, AlertEnabled: true}
}
