package repository

import (
	"context"

	"note-task-planner/internal/model"
)

// TaskRepository is the task store. Every method is scoped to an owner; a
// task belonging to someone else behaves exactly like a missing one.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, opt GetTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt GetTaskOptions) error
	DeleteTasks(ctx context.Context, ownerID string, ids []string) (int, error)
	DeleteAllTasks(ctx context.Context, ownerID string) (int, error)
}
