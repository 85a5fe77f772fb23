package repository

import (
	"sync"

	"github.com/tasklight/task-tracker-api/internal/models"
)

// MemoryTaskRepository is a process-lifetime, mutex-guarded implementation of
// TaskRepository. Insertion order is tracked explicitly so ListByOwner stays
// stable across updates.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
	order []string
}

// NewMemoryTaskRepository creates an empty in-memory task store.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[string]models.Task),
	}
}

// Create inserts a new task.
func (r *MemoryTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = *task
	r.order = append(r.order, task.ID)
	return nil
}

// ListByOwner returns the user's tasks in insertion order.
func (r *MemoryTaskRepository) ListByOwner(userID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, 0)
	for _, id := range r.order {
		task, ok := r.tasks[id]
		if !ok {
			continue
		}
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// FindByIDAndOwner finds a task matching both id and owner. The returned task
// is a copy; mutations only land via Update.
func (r *MemoryTaskRepository) FindByIDAndOwner(id, userID string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, ErrNotFound
	}
	return &task, nil
}

// Update overwrites the stored task matching the task's ID and UserID.
func (r *MemoryTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return ErrNotFound
	}

	r.tasks[task.ID] = *task
	return nil
}

// Delete removes the task matching both id and owner.
func (r *MemoryTaskRepository) Delete(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return ErrNotFound
	}

	delete(r.tasks, id)
	for i, tid := range r.order {
		if tid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
