package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is owned exclusively by the user whose ID equals UserID. Every
// read/update/delete filters by both the task ID and the owner ID.
type Task struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    Priority  `gorm:"type:varchar(10);not null" json:"priority"`
	DueDate     string    `gorm:"type:varchar(32)" json:"dueDate"`
	Completed   bool      `gorm:"not null" json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
