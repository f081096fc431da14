package service

import (
	"context"

	"github.com/shopspring/decimal"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// BudgetService handles the global budget configuration and its summary.
type BudgetService struct {
	acc          *repository.Accessors
	seeder       *Seeder
	notification *NotificationService
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(acc *repository.Accessors, seeder *Seeder, notification *NotificationService) *BudgetService {
	return &BudgetService{acc: acc, seeder: seeder, notification: notification}
}

// BudgetSummary compares total spending with the configured limit.
type BudgetSummary struct {
	Config         domain.BudgetConfig `json:"config"`
	Spent          float64             `json:"spent"`
	Remaining      float64             `json:"remaining"`
	PercentUsed    float64             `json:"percentUsed"`
	AlertTriggered bool                `json:"alertTriggered"`
	Expenses       ExpenseSummary      `json:"expenses"`
}

// GetConfig returns the budget configuration, seeding the default on first use.
func (s *BudgetService) GetConfig(ctx context.Context) domain.BudgetConfig {
	return loadOrSeedDocument(ctx, s.seeder, s.acc.Budget, defaultBudget())
}

// SaveConfig overwrites the budget configuration.
func (s *BudgetService) SaveConfig(ctx context.Context, cfg domain.BudgetConfig) (domain.BudgetConfig, error) {
	if cfg.TotalLimit < 0 || cfg.AlertThreshold < 0 || cfg.AlertThreshold > 100 {
		return domain.BudgetConfig{}, ErrInvalidBudget
	}
	if !s.acc.Budget.Set(ctx, cfg) {
		return cfg, ErrNotPersisted
	}
	return cfg, nil
}

// Summary computes the budget summary over every stored expense.
func (s *BudgetService) Summary(ctx context.Context) BudgetSummary {
	expenses := loadOrSeed(ctx, s.seeder, s.acc.Expenses, sampleExpenses)
	return Summarize(expenses).Budget(s.GetConfig(ctx))
}

// Budget compares the summary with cfg.
func (e ExpenseSummary) Budget(cfg domain.BudgetConfig) BudgetSummary {
	spent := decimal.NewFromFloat(e.Total)
	limit := decimal.NewFromFloat(cfg.TotalLimit)

	summary := BudgetSummary{
		Config:    cfg,
		Spent:     e.Total,
		Remaining: limit.Sub(spent).InexactFloat64(),
		Expenses:  e,
	}
	if limit.IsPositive() {
		summary.PercentUsed = spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
	}
	summary.AlertTriggered = cfg.AlertEnabled && limit.IsPositive() && summary.PercentUsed >= cfg.AlertThreshold
	return summary
}

// CheckThreshold notifies when a change moved spending across the alert
// threshold.
func (s *BudgetService) CheckThreshold(ctx context.Context, before, after []domain.Expense) {
	if s.notification == nil {
		return
	}

	cfg := s.GetConfig(ctx)
	prev := Summarize(before).Budget(cfg)
	next := Summarize(after).Budget(cfg)
	if next.AlertTriggered && !prev.AlertTriggered {
		_ = s.notification.NotifyBudgetThreshold(ctx, next)
	}
}
