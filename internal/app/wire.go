package app

import (
	"log/slog"

	"tripbook/internal/handler"
	"tripbook/internal/kvstore"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// Services bundles the service layer over one store.
type Services struct {
	Notification *service.NotificationService
	Trips        *service.TripService
	Bookings     *service.BookingService
	Tasks        *service.TaskService
	Expenses     *service.ExpenseService
	Timeline     *service.TimelineService
	Memories     *service.MemoryService
	Profile      *service.ProfileService
	Budget       *service.BudgetService
	Categories   *service.CategoryService
}

// NewServices wires every service over store. A nil clock uses time.Now.
func NewServices(store *kvstore.Store, seed bool, clock service.Clock, logger *slog.Logger) *Services {
	acc := repository.NewAccessors(store)
	seeder := service.NewSeeder(seed)
	notification := service.NewNotificationService(logger)
	budget := service.NewBudgetService(acc, seeder, notification)

	return &Services{
		Notification: notification,
		Trips:        service.NewTripService(acc, seeder, notification, clock),
		Bookings:     service.NewBookingService(acc, seeder, clock),
		Tasks:        service.NewTaskService(acc, seeder, clock),
		Expenses:     service.NewExpenseService(acc, seeder, budget, clock),
		Timeline:     service.NewTimelineService(acc, seeder, clock),
		Memories:     service.NewMemoryService(acc, seeder, clock),
		Profile:      service.NewProfileService(acc, seeder),
		Budget:       budget,
		Categories:   service.NewCategoryService(acc, clock),
	}
}

// Handlers fills the handler fields of a RouterDeps.
func (s *Services) Handlers(store *kvstore.Store) RouterDeps {
	return RouterDeps{
		TripHandler:     handler.NewTripHandler(s.Trips),
		BookingHandler:  handler.NewBookingHandler(s.Bookings),
		TaskHandler:     handler.NewTaskHandler(s.Tasks),
		ExpenseHandler:  handler.NewExpenseHandler(s.Expenses),
		TimelineHandler: handler.NewTimelineHandler(s.Timeline),
		MemoryHandler:   handler.NewMemoryHandler(s.Memories),
		ProfileHandler:  handler.NewProfileHandler(s.Profile),
		BudgetHandler:   handler.NewBudgetHandler(s.Budget),
		CategoryHandler: handler.NewCategoryHandler(s.Categories),
		StoreHandler:    handler.NewStoreHandler(store),
	}
}
