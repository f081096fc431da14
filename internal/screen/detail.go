package screen

import (
	"context"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// TripDetailScreen shows one trip with its bookings, checklist, expenses and
// itinerary. Bookings, tasks and expenses are held as the full collections
// and filtered by trip on every view.
type TripDetailScreen struct {
	tripID string
	trip   domain.Trip

	trips    *service.TripService
	bookings *service.BookingService
	tasks    *service.TaskService
	expenses *service.ExpenseService
	timeline *service.TimelineService

	allBookings *Local[domain.Booking]
	allTasks    *Local[domain.Task]
	allExpenses *Local[domain.Expense]
	events      *Local[domain.TimelineEvent]
}

// DetailServices groups the services a TripDetailScreen reads through.
type DetailServices struct {
	Trips    *service.TripService
	Bookings *service.BookingService
	Tasks    *service.TaskService
	Expenses *service.ExpenseService
	Timeline *service.TimelineService
}

// NewTripDetailScreen creates the detail screen of tripID.
func NewTripDetailScreen(tripID string, svc DetailServices, acc *repository.Accessors) *TripDetailScreen {
	loadEvents := func(ctx context.Context) []domain.TimelineEvent {
		events, _ := svc.Timeline.List(ctx, tripID)
		return events
	}

	return &TripDetailScreen{
		tripID:      tripID,
		trips:       svc.Trips,
		bookings:    svc.Bookings,
		tasks:       svc.Tasks,
		expenses:    svc.Expenses,
		timeline:    svc.Timeline,
		allBookings: NewLocal(acc.Bookings, svc.Bookings.List),
		allTasks:    NewLocal(acc.Tasks, svc.Tasks.List),
		allExpenses: NewLocal(acc.Expenses, svc.Expenses.List),
		events:      NewLocal(acc.TripEvents(tripID), loadEvents).Ordered(service.SortEvents),
	}
}

// Focus re-reads the trip and every collection the screen shows.
func (s *TripDetailScreen) Focus(ctx context.Context) error {
	trip, err := s.trips.Get(ctx, s.tripID)
	if err != nil {
		return err
	}
	s.trip = trip
	s.allBookings.Focus(ctx)
	s.allTasks.Focus(ctx)
	s.allExpenses.Focus(ctx)
	s.events.Focus(ctx)
	return nil
}

// Trip returns the open trip as last read.
func (s *TripDetailScreen) Trip() domain.Trip { return s.trip }

// Timing returns the countdown label of the open trip.
func (s *TripDetailScreen) Timing() string {
	return s.trips.Timing(s.trip)
}

// Bookings returns the open trip's bookings from the screen's copy.
func (s *TripDetailScreen) Bookings() []domain.Booking {
	return domain.FilterByTrip(s.allBookings.Items(), s.tripID)
}

// Tasks returns the open trip's checklist from the screen's copy.
func (s *TripDetailScreen) Tasks() []domain.Task {
	return domain.FilterByTrip(s.allTasks.Items(), s.tripID)
}

// Expenses returns the open trip's expenses from the screen's copy.
func (s *TripDetailScreen) Expenses() []domain.Expense {
	return domain.FilterByTrip(s.allExpenses.Items(), s.tripID)
}

// Events returns the open trip's timeline ordered by time.
func (s *TripDetailScreen) Events() []domain.TimelineEvent {
	return s.events.Items()
}

// Progress returns the checklist completion of the trip.
func (s *TripDetailScreen) Progress() (done, total int) {
	return service.Progress(s.Tasks())
}

// ExpenseSummary totals the trip's expenses.
func (s *TripDetailScreen) ExpenseSummary() service.ExpenseSummary {
	return service.Summarize(s.Expenses())
}

// AddBooking appends a booking for the open trip.
func (s *TripDetailScreen) AddBooking(ctx context.Context, req service.BookingRequest) (domain.Booking, error) {
	req.TripID = s.tripID
	booking, err := s.bookings.BuildBooking(req)
	if err != nil {
		return domain.Booking{}, err
	}
	return booking, s.allBookings.Append(ctx, booking)
}

// DeleteBooking drops a booking and writes the full collection.
func (s *TripDetailScreen) DeleteBooking(ctx context.Context, id string) error {
	return s.allBookings.Remove(ctx, id)
}

// AddTask appends a checklist item for the open trip.
func (s *TripDetailScreen) AddTask(ctx context.Context, text string) (domain.Task, error) {
	task, err := s.tasks.BuildTask(s.tripID, text)
	if err != nil {
		return domain.Task{}, err
	}
	return task, s.allTasks.Append(ctx, task)
}

// ToggleTask flips the completed flag of a checklist item.
func (s *TripDetailScreen) ToggleTask(ctx context.Context, id string) (domain.Task, error) {
	return s.allTasks.Update(ctx, id, domain.ToggleCompleted, service.ErrTaskNotFound)
}

// DeleteTask drops a checklist item and writes the full collection.
func (s *TripDetailScreen) DeleteTask(ctx context.Context, id string) error {
	return s.allTasks.Remove(ctx, id)
}

// AddExpense records an expense of the open trip at the head of the list.
func (s *TripDetailScreen) AddExpense(ctx context.Context, req service.ExpenseRequest) (domain.Expense, error) {
	req.TripID = s.tripID
	expense, err := s.expenses.BuildExpense(req)
	if err != nil {
		return domain.Expense{}, err
	}
	return expense, s.allExpenses.Prepend(ctx, expense)
}

// DeleteExpense drops an expense and writes the full collection.
func (s *TripDetailScreen) DeleteExpense(ctx context.Context, id string) error {
	return s.allExpenses.Remove(ctx, id)
}

// AddEvent adds an itinerary entry; the timeline stays ordered by time.
func (s *TripDetailScreen) AddEvent(ctx context.Context, req service.EventRequest) (domain.TimelineEvent, error) {
	event, err := s.timeline.BuildEvent(req)
	if err != nil {
		return domain.TimelineEvent{}, err
	}
	return event, s.events.Append(ctx, event)
}

// DeleteEvent drops an itinerary entry from the trip's timeline.
func (s *TripDetailScreen) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Remove(ctx, id)
}
