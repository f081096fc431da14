package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBudgetThreshold NotificationType = "BUDGET_THRESHOLD"
	NotificationTripCreated     NotificationType = "TRIP_CREATED"
)

// sentHistorySize bounds the notifications kept for Sent.
const sentHistorySize = 100

// Notification represents a notification to be sent.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]any
	CreatedAt time.Time
}

// NotificationService delivers user-facing notifications. Delivery is a
// structured log line; there is no push channel.
type NotificationService struct {
	log *slog.Logger

	mu   sync.Mutex
	sent []Notification
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{log: logger}
}

// NotifyBudgetThreshold warns that spending reached the alert threshold.
func (s *NotificationService) NotifyBudgetThreshold(ctx context.Context, summary BudgetSummary) error {
	return s.send(ctx, Notification{
		Type:  NotificationBudgetThreshold,
		Title: "Alerta de orçamento",
		Message: fmt.Sprintf("Você já usou %.0f%% do orçamento (%.2f de %.2f)",
			summary.PercentUsed, summary.Spent, summary.Config.TotalLimit),
		Data: map[string]any{
			"spent":        summary.Spent,
			"limit":        summary.Config.TotalLimit,
			"percent_used": summary.PercentUsed,
			"threshold":    summary.Config.AlertThreshold,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTripCreated confirms a new trip.
func (s *NotificationService) NotifyTripCreated(ctx context.Context, destination, timing string) error {
	return s.send(ctx, Notification{
		Type:    NotificationTripCreated,
		Title:   "Nova viagem",
		Message: fmt.Sprintf("%s: %s", destination, timing),
		Data: map[string]any{
			"destination": destination,
		},
		CreatedAt: time.Now(),
	})
}

// Sent returns the notifications delivered so far.
func (s *NotificationService) Sent() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.sent...)
}

func (s *NotificationService) send(ctx context.Context, n Notification) error {
	s.mu.Lock()
	s.sent = append(s.sent, n)
	if len(s.sent) > sentHistorySize {
		s.sent = s.sent[len(s.sent)-sentHistorySize:]
	}
	s.mu.Unlock()

	s.log.InfoContext(ctx, "notification",
		"type", n.Type,
		"title", n.Title,
		"message", n.Message,
	)
	return nil
}
