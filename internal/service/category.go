package service

import (
	"context"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// CategoryService handles user-defined expense categories. They are never
// seeded.
type CategoryService struct {
	acc *repository.Accessors
	now Clock
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(acc *repository.Accessors, clock Clock) *CategoryService {
	return &CategoryService{acc: acc, now: clockOrNow(clock)}
}

// CategoryRequest contains the editable fields of a custom category.
type CategoryRequest struct {
	Name  string
	Icon  string
	Color string
}

// List returns the custom categories.
func (s *CategoryService) List(ctx context.Context) []domain.CustomCategory {
	categories, _ := s.acc.CustomCategories.Get(ctx)
	if categories == nil {
		return []domain.CustomCategory{}
	}
	return categories
}

// All returns the built-in categories followed by the custom ones.
func (s *CategoryService) All(ctx context.Context) []domain.ExpenseCategory {
	out := append([]domain.ExpenseCategory{}, domain.DefaultCategories...)
	for _, c := range s.List(ctx) {
		out = append(out, domain.ExpenseCategory(c.ID))
	}
	return out
}

// Add appends a custom category.
func (s *CategoryService) Add(ctx context.Context, req CategoryRequest) (Mutation[domain.CustomCategory], error) {
	category, err := categoryFromRequest(NewID(s.now()), req)
	if err != nil {
		return Mutation[domain.CustomCategory]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.CustomCategories, func(categories []domain.CustomCategory) ([]domain.CustomCategory, error) {
		return domain.Append(categories, category), nil
	})
	return Mutation[domain.CustomCategory]{Item: category, List: list}, err
}

// Update replaces a custom category.
func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (Mutation[domain.CustomCategory], error) {
	category, err := categoryFromRequest(id, req)
	if err != nil {
		return Mutation[domain.CustomCategory]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.CustomCategories, func(categories []domain.CustomCategory) ([]domain.CustomCategory, error) {
		return replaceExisting(categories, category, ErrCategoryNotFound)
	})
	return Mutation[domain.CustomCategory]{Item: category, List: list}, err
}

// Delete removes a custom category. Expenses already using it keep the value.
func (s *CategoryService) Delete(ctx context.Context, id string) ([]domain.CustomCategory, error) {
	return mutate(ctx, s.List, s.acc.CustomCategories, func(categories []domain.CustomCategory) ([]domain.CustomCategory, error) {
		return domain.Remove(categories, id), nil
	})
}

func categoryFromRequest(id string, req CategoryRequest) (domain.CustomCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CustomCategory{}, ErrCategoryNameRequired
	}
	return domain.CustomCategory{ID: id, Name: name, Icon: req.Icon, Color: req.Color}, nil
}
