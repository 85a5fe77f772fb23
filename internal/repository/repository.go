package repository

import (
	"errors"

	"github.com/tasklight/task-tracker-api/internal/models"
)

var (
	// ErrNotFound is returned when no record matches both the record ID and
	// the owner ID. An ownership mismatch is indistinguishable from a missing
	// record so task existence never leaks across users.
	ErrNotFound = errors.New("repository: record not found")

	// ErrDuplicateEmail is returned when creating a user whose email is
	// already registered. The check happens atomically inside Create.
	ErrDuplicateEmail = errors.New("repository: email already registered")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, rejecting duplicate emails with
	// ErrDuplicateEmail.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access. All lookups are
// scoped by the owning user's ID.
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// ListByOwner returns the user's tasks in insertion order
	ListByOwner(userID string) ([]models.Task, error)

	// FindByIDAndOwner finds a task matching both id and owner
	FindByIDAndOwner(id, userID string) (*models.Task, error)

	// Update overwrites the stored task matching the task's ID and UserID
	Update(task *models.Task) error

	// Delete removes the task matching both id and owner
	Delete(id, userID string) error
}
