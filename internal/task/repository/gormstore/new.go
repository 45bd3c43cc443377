package gormstore

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"note-task-planner/internal/task/repository"
	"note-task-planner/pkg/log"
)

type implRepository struct {
	db    *gorm.DB
	l     log.Logger
	clock func() time.Time
}

// New creates a gorm-backed TaskRepository. Call Migrate once before use.
func New(db *gorm.DB, l log.Logger) repository.TaskRepository {
	if db == nil {
		panic("task/repository/gormstore: db is required")
	}
	return &implRepository{db: db, l: l, clock: time.Now}
}

// Migrate creates or updates the tasks table.
func Migrate(db *gorm.DB) error {
	return errors.WithStack(db.AutoMigrate(&taskRecord{}))
}

func (r *implRepository) op(method string) string {
	return fmt.Sprintf("task/repository/gormstore.%s", method)
}

// fail keeps both the repository error kind and the driver cause.
func fail(kind, cause error) error {
	return errors.WithStack(fmt.Errorf("%w: %w", kind, cause))
}
