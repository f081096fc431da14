package service

import (
	"errors"
	"fmt"

	"tripbook/internal/repository"
)

var (
	// ErrValidation is wrapped by every input validation error. Validation
	// runs before any storage call, so a validation failure never writes.
	ErrValidation = errors.New("validation error")

	// ErrNotPersisted is returned when the new collection could not be written.
	// The accompanying result still carries the new list so callers can keep
	// showing it.
	ErrNotPersisted = errors.New("changes could not be saved")
)

var (
	// ErrDestinationRequired is returned when a trip has no destination.
	ErrDestinationRequired = fmt.Errorf("%w: destination is required", ErrValidation)

	// ErrInvalidTripStatus is returned for an unknown trip status.
	ErrInvalidTripStatus = fmt.Errorf("%w: invalid trip status", ErrValidation)

	// ErrInvalidTripID is returned when a trip ID is empty.
	ErrInvalidTripID = fmt.Errorf("%w: invalid trip id", ErrValidation)

	// ErrProviderRequired is returned when a booking has no provider name.
	ErrProviderRequired = fmt.Errorf("%w: provider is required", ErrValidation)

	// ErrDescriptionRequired is returned when an expense has no description.
	ErrDescriptionRequired = fmt.Errorf("%w: description is required", ErrValidation)

	// ErrInvalidAmount is returned when an expense amount cannot be parsed.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a number", ErrValidation)

	// ErrTextRequired is returned when a task or subtask has no text.
	ErrTextRequired = fmt.Errorf("%w: text is required", ErrValidation)

	// ErrTitleRequired is returned when a timeline event has no title.
	ErrTitleRequired = fmt.Errorf("%w: title is required", ErrValidation)

	// ErrInvalidEventTime is returned when a timeline event time is not HH:mm.
	ErrInvalidEventTime = fmt.Errorf("%w: time must be HH:mm", ErrValidation)

	// ErrImageRequired is returned when a memory has no image.
	ErrImageRequired = fmt.Errorf("%w: image is required", ErrValidation)

	// ErrCategoryNameRequired is returned when a custom category has no name.
	ErrCategoryNameRequired = fmt.Errorf("%w: category name is required", ErrValidation)

	// ErrInvalidBudget is returned for a negative limit or a threshold outside 0..100.
	ErrInvalidBudget = fmt.Errorf("%w: invalid budget configuration", ErrValidation)
)

var (
	ErrTripNotFound     = fmt.Errorf("trip %w", repository.ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", repository.ErrNotFound)
	ErrTaskNotFound     = fmt.Errorf("task %w", repository.ErrNotFound)
	ErrExpenseNotFound  = fmt.Errorf("expense %w", repository.ErrNotFound)
	ErrEventNotFound    = fmt.Errorf("event %w", repository.ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", repository.ErrNotFound)
)
