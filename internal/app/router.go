package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"tripbook/internal/handler"
	"tripbook/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	TripHandler     *handler.TripHandler
	BookingHandler  *handler.BookingHandler
	TaskHandler     *handler.TaskHandler
	ExpenseHandler  *handler.ExpenseHandler
	TimelineHandler *handler.TimelineHandler
	MemoryHandler   *handler.MemoryHandler
	ProfileHandler  *handler.ProfileHandler
	BudgetHandler   *handler.BudgetHandler
	CategoryHandler *handler.CategoryHandler
	StoreHandler    *handler.StoreHandler

	// Idempotency enables Idempotency-Key replay when set.
	Idempotency middleware.ResponseCache
	NewRelicApp *newrelic.Application
	Logger      *slog.Logger
	CORSOrigins []string
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SlogLogger(logger))
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
		router.Use(middleware.NewRelicAttributes())
	}

	if deps.Idempotency != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.Idempotency))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Trip routes, with everything scoped to one trip.
		trips := v1.Group("/trips")
		{
			trips.GET("", deps.TripHandler.GetAll)
			trips.POST("", deps.TripHandler.CreateTrip)
			trips.GET("/:id", deps.TripHandler.GetTrip)
			trips.PUT("/:id", deps.TripHandler.UpdateTrip)

			trips.GET("/:id/bookings", deps.BookingHandler.GetByTrip)
			trips.POST("/:id/bookings", deps.BookingHandler.CreateBooking)

			trips.GET("/:id/tasks", deps.TaskHandler.GetByTrip)
			trips.POST("/:id/tasks", deps.TaskHandler.CreateTask)

			trips.GET("/:id/expenses", deps.ExpenseHandler.GetByTrip)
			trips.POST("/:id/expenses", deps.ExpenseHandler.CreateExpense)
			trips.GET("/:id/expenses/summary", deps.ExpenseHandler.GetTripSummary)

			trips.GET("/:id/events", deps.TimelineHandler.GetEvents)
			trips.POST("/:id/events", deps.TimelineHandler.CreateEvent)
			trips.PUT("/:id/events/:eventId", deps.TimelineHandler.UpdateEvent)
			trips.DELETE("/:id/events/:eventId", deps.TimelineHandler.DeleteEvent)
		}

		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.PUT("/:id", deps.BookingHandler.UpdateBooking)
			bookings.DELETE("/:id", deps.BookingHandler.DeleteBooking)
		}

		// Task routes.
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", deps.TaskHandler.GetAll)
			tasks.POST("/:id/toggle", deps.TaskHandler.ToggleTask)
			tasks.DELETE("/:id", deps.TaskHandler.DeleteTask)
			tasks.POST("/:id/subtasks", deps.TaskHandler.AddSubtask)
			tasks.POST("/:id/subtasks/:subId/toggle", deps.TaskHandler.ToggleSubtask)
			tasks.DELETE("/:id/subtasks/:subId", deps.TaskHandler.DeleteSubtask)
		}

		// Expense routes.
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", deps.ExpenseHandler.GetAll)
			expenses.GET("/summary", deps.ExpenseHandler.GetSummary)
			expenses.PUT("/:id", deps.ExpenseHandler.UpdateExpense)
			expenses.DELETE("/:id", deps.ExpenseHandler.DeleteExpense)
		}

		// Memory routes.
		memories := v1.Group("/memories")
		{
			memories.GET("", deps.MemoryHandler.GetAll)
			memories.POST("", deps.MemoryHandler.CreateMemory)
			memories.DELETE("/:id", deps.MemoryHandler.DeleteMemory)
		}

		// Profile and aggregate routes.
		v1.GET("/profile", deps.ProfileHandler.GetProfile)
		v1.PUT("/profile", deps.ProfileHandler.UpdateProfile)
		v1.GET("/stats", deps.TripHandler.GetStats)

		// Budget routes.
		budget := v1.Group("/budget")
		{
			budget.GET("", deps.BudgetHandler.GetConfig)
			budget.PUT("", deps.BudgetHandler.UpdateConfig)
			budget.GET("/summary", deps.BudgetHandler.GetSummary)
		}

		// Custom category routes.
		categories := v1.Group("/categories")
		{
			categories.GET("", deps.CategoryHandler.GetAll)
			categories.POST("", deps.CategoryHandler.CreateCategory)
			categories.PUT("/:id", deps.CategoryHandler.UpdateCategory)
			categories.DELETE("/:id", deps.CategoryHandler.DeleteCategory)
		}

		v1.DELETE("/store", deps.StoreHandler.Clear)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "Idempotency-Key", "X-Request-ID")
	cfg.ExposeHeaders = []string{"X-Request-ID", "Idempotent-Replayed"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
