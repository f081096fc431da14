package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// expenseDateLayout formats the default date of a new expense.
const expenseDateLayout = "02/01/2006"

// ExpenseService handles expense operations.
type ExpenseService struct {
	acc    *repository.Accessors
	seeder *Seeder
	budget *BudgetService
	now    Clock
}

// NewExpenseService creates a new ExpenseService. budget may be nil, in
// which case no budget alerts are raised.
func NewExpenseService(acc *repository.Accessors, seeder *Seeder, budget *BudgetService, clock Clock) *ExpenseService {
	return &ExpenseService{acc: acc, seeder: seeder, budget: budget, now: clockOrNow(clock)}
}

// ExpenseRequest contains the editable fields of an expense. Amount is the
// raw user input and accepts either "." or "," as decimal separator.
type ExpenseRequest struct {
	TripID      string
	Description string
	Amount      string
	Category    domain.ExpenseCategory
	Date        string
}

// ExpenseSummary aggregates a set of expenses.
type ExpenseSummary struct {
	Count      int                                `json:"count"`
	Total      float64                            `json:"total"`
	ByCategory map[domain.ExpenseCategory]float64 `json:"byCategory"`
}

// List returns the expenses of every trip.
func (s *ExpenseService) List(ctx context.Context) []domain.Expense {
	return loadOrSeed(ctx, s.seeder, s.acc.Expenses, sampleExpenses)
}

// ListByTrip returns the expenses of one trip.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID string) []domain.Expense {
	return domain.FilterByTrip(s.List(ctx), tripID)
}

// BuildExpense validates req and constructs a new expense record.
func (s *ExpenseService) BuildExpense(req ExpenseRequest) (domain.Expense, error) {
	return s.expenseFromRequest(NewID(s.now()), req)
}

// Create adds an expense at the head of the list and checks the budget.
func (s *ExpenseService) Create(ctx context.Context, req ExpenseRequest) (Mutation[domain.Expense], error) {
	expense, err := s.BuildExpense(req)
	if err != nil {
		return Mutation[domain.Expense]{}, err
	}

	var before []domain.Expense
	list, err := mutate(ctx, s.List, s.acc.Expenses, func(expenses []domain.Expense) ([]domain.Expense, error) {
		before = expenses
		return domain.Prepend(expenses, expense), nil
	})
	if err == nil && s.budget != nil {
		s.budget.CheckThreshold(ctx, before, list)
	}
	return Mutation[domain.Expense]{Item: expense, List: list}, err
}

// Update replaces an existing expense.
func (s *ExpenseService) Update(ctx context.Context, id string, req ExpenseRequest) (Mutation[domain.Expense], error) {
	expense, err := s.expenseFromRequest(id, req)
	if err != nil {
		return Mutation[domain.Expense]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.Expenses, func(expenses []domain.Expense) ([]domain.Expense, error) {
		return replaceExisting(expenses, expense, ErrExpenseNotFound)
	})
	return Mutation[domain.Expense]{Item: expense, List: list}, err
}

// Delete removes an expense.
func (s *ExpenseService) Delete(ctx context.Context, id string) ([]domain.Expense, error) {
	return mutate(ctx, s.List, s.acc.Expenses, func(expenses []domain.Expense) ([]domain.Expense, error) {
		return domain.Remove(expenses, id), nil
	})
}

// Summary aggregates the expenses of one trip, or of every trip when tripID
// is empty.
func (s *ExpenseService) Summary(ctx context.Context, tripID string) ExpenseSummary {
	expenses := s.List(ctx)
	if tripID != "" {
		expenses = domain.FilterByTrip(expenses, tripID)
	}
	return Summarize(expenses)
}

// Summarize totals expenses with exact decimal arithmetic.
func Summarize(expenses []domain.Expense) ExpenseSummary {
	total := decimal.Zero
	byCategory := make(map[domain.ExpenseCategory]decimal.Decimal)
	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		total = total.Add(amount)
		byCategory[e.Category] = byCategory[e.Category].Add(amount)
	}

	summary := ExpenseSummary{
		Count:      len(expenses),
		Total:      total.InexactFloat64(),
		ByCategory: make(map[domain.ExpenseCategory]float64, len(byCategory)),
	}
	for c, v := range byCategory {
		summary.ByCategory[c] = v.InexactFloat64()
	}
	return summary
}

// amountPattern admits plain digits with separators only. Exponent forms
// are rejected before decimal parsing.
var amountPattern = regexp.MustCompile(`^[+-]?[0-9.,]*[0-9][0-9.,]*$`)

const maxAmountLength = 24

// ParseAmount parses a user-entered amount. When both "." and "," appear,
// the last one is the decimal separator and the other groups thousands, so
// "1.234,56" and "1,234.56" are the same amount. The sign is dropped:
// amounts are stored as magnitudes.
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxAmountLength || !amountPattern.MatchString(raw) {
		return 0, ErrInvalidAmount
	}

	comma, dot := strings.LastIndex(raw, ","), strings.LastIndex(raw, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		raw = strings.ReplaceAll(raw, ",", "")
	case comma >= 0:
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return d.Abs().Round(2).InexactFloat64(), nil
}

func (s *ExpenseService) expenseFromRequest(id string, req ExpenseRequest) (domain.Expense, error) {
	if strings.TrimSpace(req.TripID) == "" {
		return domain.Expense{}, ErrInvalidTripID
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.Expense{}, ErrDescriptionRequired
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return domain.Expense{}, err
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}
	date := req.Date
	if date == "" {
		date = s.now().Format(expenseDateLayout)
	}

	return domain.Expense{
		ID:          id,
		TripID:      req.TripID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	}, nil
}
