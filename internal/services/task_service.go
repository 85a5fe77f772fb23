package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tasklight/task-tracker-api/internal/models"
	"github.com/tasklight/task-tracker-api/internal/repository"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
)

// TaskService handles task business logic. Every operation is scoped by the
// caller's user ID; a task that exists but belongs to someone else behaves
// exactly like a missing one.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     string
}

// UpdateTaskInput represents input for a partial update. Nil means "keep the
// stored value". Description and DueDate are replaced even when explicitly
// set to the empty string; an explicitly empty Title or Priority keeps the
// stored value instead.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	DueDate     *string
}

// List returns the user's tasks in insertion order.
func (s *TaskService) List(userID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create validates the input, applies defaults and stores the task.
func (s *TaskService) Create(userID string, input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update overwrites only the provided fields of the user's task.
func (s *TaskService) Update(taskID, userID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndOwner(taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil && *input.Title != "" {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil && *input.Priority != "" {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// SetCompleted sets the completion flag of the user's task unconditionally.
func (s *TaskService) SetCompleted(taskID, userID string, completed bool) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndOwner(taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Completed = completed

	if err := s.taskRepo.Update(task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes the user's task.
func (s *TaskService) Delete(taskID, userID string) error {
	if err := s.taskRepo.Delete(taskID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
