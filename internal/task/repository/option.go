package repository

import (
	"time"

	"note-task-planner/internal/model"
)

// CreateTaskOptions holds the fields of a new task. CreatedAt defaults to now.
type CreateTaskOptions struct {
	OwnerID        string
	Title          string
	Description    string
	Priority       model.Priority
	EstimatedHours *float64
	DueDate        *time.Time
	Status         model.Status
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// GetTaskOptions addresses a single task of one owner.
type GetTaskOptions struct {
	ID      string
	OwnerID string
}

// ListTasksOptions filters an owner's tasks. DueFrom/DueTo bound the due
// date inclusively and exclude undated tasks; UndatedOnly selects the
// opposite. Results are ordered newest first.
type ListTasksOptions struct {
	OwnerID     string
	DueFrom     *time.Time
	DueTo       *time.Time
	UndatedOnly bool
	Status      model.Status
}

// UpdateTaskOptions replaces the mutable fields of a task.
type UpdateTaskOptions struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	Priority        model.Priority
	EstimatedHours  *float64
	DueDate         *time.Time
	Status          model.Status
	CompletedAt     *time.Time
	CalendarEventID string
}
