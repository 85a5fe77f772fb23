package repository

import (
	"errors"

	"github.com/tasklight/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-backed TaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByOwner returns the user's tasks in insertion order. The id is a
// secondary sort key so the order stays deterministic when two tasks share a
// timestamp within the column's precision.
func (r *GormTaskRepository) ListByOwner(userID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByIDAndOwner finds a task matching both id and owner
func (r *GormTaskRepository) FindByIDAndOwner(id, userID string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update overwrites the stored task matching the task's ID and UserID. The
// column list is explicit so zero values ("" description, completed=false)
// are written too.
func (r *GormTaskRepository) Update(task *models.Task) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"due_date":    task.DueDate,
			"completed":   task.Completed,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the task matching both id and owner
func (r *GormTaskRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
