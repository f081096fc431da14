package repository

// Canonical storage keys. Every collection is read and written under
// exactly one of these; no other package spells a key.
const (
	KeyTrips            = "trips"
	KeyBookings         = "bookings"
	KeyMemories         = "memories"
	KeyProfile          = "profile"
	KeyTasks            = "tasks"
	KeyExpenses         = "expenses"
	KeyBudgetConfig     = "budget_config"
	KeyCustomCategories = "custom_categories"

	tripEventsKeyPrefix = "trip_events_"
)

// TripEventsKey returns the key holding the timeline of one trip.
func TripEventsKey(tripID string) string {
	return tripEventsKeyPrefix + tripID
}
