package service

import (
	"context"
	"fmt"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// TaskService handles checklist operations.
type TaskService struct {
	acc    *repository.Accessors
	seeder *Seeder
	now    Clock
}

// NewTaskService creates a new TaskService.
func NewTaskService(acc *repository.Accessors, seeder *Seeder, clock Clock) *TaskService {
	return &TaskService{acc: acc, seeder: seeder, now: clockOrNow(clock)}
}

// List returns the tasks of every trip.
func (s *TaskService) List(ctx context.Context) []domain.Task {
	return loadOrSeed(ctx, s.seeder, s.acc.Tasks, sampleTasks)
}

// ListByTrip returns the tasks of one trip. A blank tripID selects nothing.
func (s *TaskService) ListByTrip(ctx context.Context, tripID string) []domain.Task {
	if strings.TrimSpace(tripID) == "" {
		return []domain.Task{}
	}
	return domain.FilterByTrip(s.List(ctx), tripID)
}

// BuildTask validates tripID and text and constructs a new task record.
func (s *TaskService) BuildTask(tripID, text string) (domain.Task, error) {
	if strings.TrimSpace(tripID) == "" {
		return domain.Task{}, ErrInvalidTripID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Task{}, ErrTextRequired
	}
	return domain.Task{ID: NewID(s.now()), TripID: tripID, Text: text}, nil
}

// Create appends a task.
func (s *TaskService) Create(ctx context.Context, tripID, text string) (Mutation[domain.Task], error) {
	task, err := s.BuildTask(tripID, text)
	if err != nil {
		return Mutation[domain.Task]{}, err
	}

	list, err := mutate(ctx, s.List, s.acc.Tasks, func(tasks []domain.Task) ([]domain.Task, error) {
		return domain.Append(tasks, task), nil
	})
	return Mutation[domain.Task]{Item: task, List: list}, err
}

// Toggle flips the completed flag of a task.
func (s *TaskService) Toggle(ctx context.Context, id string) (Mutation[domain.Task], error) {
	return s.update(ctx, id, domain.ToggleCompleted)
}

// Delete removes a task and its subtasks.
func (s *TaskService) Delete(ctx context.Context, id string) ([]domain.Task, error) {
	return mutate(ctx, s.List, s.acc.Tasks, func(tasks []domain.Task) ([]domain.Task, error) {
		return domain.Remove(tasks, id), nil
	})
}

// AddSubtask appends a subtask to a task.
func (s *TaskService) AddSubtask(ctx context.Context, taskID, text string) (Mutation[domain.Task], error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Mutation[domain.Task]{}, ErrTextRequired
	}

	return s.update(ctx, taskID, func(t domain.Task) domain.Task {
		sub := domain.Task{
			ID:     fmt.Sprintf("%s-%s", t.ID, NewID(s.now())),
			TripID: t.TripID,
			Text:   text,
		}
		t.Subtasks = domain.Append(t.Subtasks, sub)
		return t
	})
}

// ToggleSubtask flips the completed flag of one subtask.
func (s *TaskService) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (Mutation[domain.Task], error) {
	return s.update(ctx, taskID, func(t domain.Task) domain.Task {
		t.Subtasks = domain.Map(t.Subtasks, subtaskID, domain.ToggleCompleted)
		return t
	})
}

// DeleteSubtask removes one subtask.
func (s *TaskService) DeleteSubtask(ctx context.Context, taskID, subtaskID string) (Mutation[domain.Task], error) {
	return s.update(ctx, taskID, func(t domain.Task) domain.Task {
		t.Subtasks = domain.Remove(t.Subtasks, subtaskID)
		return t
	})
}

func (s *TaskService) update(ctx context.Context, id string, fn func(domain.Task) domain.Task) (Mutation[domain.Task], error) {
	var updated domain.Task
	list, err := mutate(ctx, s.List, s.acc.Tasks, func(tasks []domain.Task) ([]domain.Task, error) {
		current, ok := domain.Find(tasks, id)
		if !ok {
			return nil, ErrTaskNotFound
		}
		updated = fn(current)
		return domain.Replace(tasks, updated), nil
	})
	return Mutation[domain.Task]{Item: updated, List: list}, err
}

// Progress returns how many of tasks are completed.
func Progress(tasks []domain.Task) (done, total int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(tasks)
}
