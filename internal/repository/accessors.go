package repository

import (
	"tripbook/internal/domain"
	"tripbook/internal/kvstore"
)

// Accessors groups the typed accessor for every canonical key.
type Accessors struct {
	store *kvstore.Store

	Trips            Collection[domain.Trip]
	Bookings         Collection[domain.Booking]
	Memories         Collection[domain.Memory]
	Tasks            Collection[domain.Task]
	Expenses         Collection[domain.Expense]
	CustomCategories Collection[domain.CustomCategory]
	Profile          Document[domain.Profile]
	Budget           Document[domain.BudgetConfig]
}

// NewAccessors binds all accessors to store.
func NewAccessors(store *kvstore.Store) *Accessors {
	return &Accessors{
		store:            store,
		Trips:            NewCollection[domain.Trip](store, KeyTrips),
		Bookings:         NewCollection[domain.Booking](store, KeyBookings),
		Memories:         NewCollection[domain.Memory](store, KeyMemories),
		Tasks:            NewCollection[domain.Task](store, KeyTasks),
		Expenses:         NewCollection[domain.Expense](store, KeyExpenses),
		CustomCategories: NewCollection[domain.CustomCategory](store, KeyCustomCategories),
		Profile:          NewDocument[domain.Profile](store, KeyProfile),
		Budget:           NewDocument[domain.BudgetConfig](store, KeyBudgetConfig),
	}
}

// TripEvents returns the timeline accessor of one trip.
func (a *Accessors) TripEvents(tripID string) Collection[domain.TimelineEvent] {
	return NewCollection[domain.TimelineEvent](a.store, TripEventsKey(tripID))
}

// Store returns the underlying key-value store.
func (a *Accessors) Store() *kvstore.Store {
	return a.store
}
