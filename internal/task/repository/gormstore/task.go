package gormstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"note-task-planner/internal/model"
	repo "note-task-planner/internal/task/repository"
)

type taskRecord struct {
	ID              string     `gorm:"primaryKey;size:36"`
	OwnerID         string     `gorm:"size:128;not null;index:idx_tasks_owner_due,priority:1"`
	Title           string     `gorm:"size:255;not null"`
	Description     string     `gorm:"type:text"`
	Priority        string     `gorm:"size:16;not null"`
	EstimatedHours  *float64
	DueDate         *time.Time `gorm:"index:idx_tasks_owner_due,priority:2"`
	Status          string     `gorm:"size:16;not null;index"`
	CompletedAt     *time.Time
	CalendarEventID string `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (taskRecord) TableName() string { return "tasks" }

func (rec taskRecord) toModel() model.Task {
	return model.Task{
		ID:              rec.ID,
		OwnerID:         rec.OwnerID,
		Title:           rec.Title,
		Description:     rec.Description,
		Priority:        model.Priority(rec.Priority),
		EstimatedHours:  rec.EstimatedHours,
		DueDate:         utcPtr(rec.DueDate),
		Status:          model.Status(rec.Status),
		CreatedAt:       rec.CreatedAt.UTC(),
		CompletedAt:     utcPtr(rec.CompletedAt),
		UpdatedAt:       rec.UpdatedAt.UTC(),
		CalendarEventID: rec.CalendarEventID,
	}
}

// utcPtr copies t in UTC. Text-backed drivers compare timestamps as strings,
// so everything is written and queried in a single zone.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// CreateTask inserts a task with a fresh UUID.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := r.clock().UTC()
	createdAt := opt.CreatedAt.UTC()
	if opt.CreatedAt.IsZero() {
		createdAt = now
	}

	rec := taskRecord{
		ID:             uuid.NewString(),
		OwnerID:        opt.OwnerID,
		Title:          opt.Title,
		Description:    opt.Description,
		Priority:       string(opt.Priority),
		EstimatedHours: opt.EstimatedHours,
		DueDate:        utcPtr(opt.DueDate),
		Status:         string(opt.Status),
		CompletedAt:    utcPtr(opt.CompletedAt),
		CreatedAt:      createdAt,
		UpdatedAt:      now,
	}
	if rec.Status == "" {
		rec.Status = string(model.StatusPending)
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateTask"), err)
		return model.Task{}, fail(repo.ErrFailedToInsert, err)
	}
	return rec.toModel(), nil
}

// GetTask fetches one task of one owner.
func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.Task, error) {
	var rec taskRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, errors.WithStack(repo.ErrNotFound)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("GetTask"), err)
		return model.Task{}, fail(repo.ErrFailedToGet, err)
	}
	return rec.toModel(), nil
}

// ListTasks returns the owner's tasks newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var recs []taskRecord
	err := r.buildListQuery(r.db.WithContext(ctx), opt).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListTasks"), err)
		return nil, fail(repo.ErrFailedToList, err)
	}

	tasks := make([]model.Task, len(recs))
	for i, rec := range recs {
		tasks[i] = rec.toModel()
	}
	return tasks, nil
}

// UpdateTask overwrites the mutable fields, including clearing nullable ones.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	updates := map[string]any{
		"title":             opt.Title,
		"description":       opt.Description,
		"priority":          string(opt.Priority),
		"estimated_hours":   opt.EstimatedHours,
		"due_date":          utcPtr(opt.DueDate),
		"status":            string(opt.Status),
		"completed_at":      utcPtr(opt.CompletedAt),
		"calendar_event_id": opt.CalendarEventID,
		"updated_at":        r.clock().UTC(),
	}

	res := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("UpdateTask"), res.Error)
		return model.Task{}, fail(repo.ErrFailedToUpdate, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Task{}, errors.WithStack(repo.ErrNotFound)
	}

	return r.GetTask(ctx, repo.GetTaskOptions{ID: opt.ID, OwnerID: opt.OwnerID})
}

// DeleteTask removes one task of one owner.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.GetTaskOptions) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		Delete(&taskRecord{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("DeleteTask"), res.Error)
		return fail(repo.ErrFailedToDelete, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.WithStack(repo.ErrNotFound)
	}
	return nil
}

// DeleteTasks removes the listed ids that belong to ownerID and reports how many went.
func (r *implRepository) DeleteTasks(ctx context.Context, ownerID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Delete(&taskRecord{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("DeleteTasks"), res.Error)
		return 0, fail(repo.ErrFailedToDelete, res.Error)
	}
	return int(res.RowsAffected), nil
}

// DeleteAllTasks removes every task of ownerID.
func (r *implRepository) DeleteAllTasks(ctx context.Context, ownerID string) (int, error) {
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&taskRecord{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("DeleteAllTasks"), res.Error)
		return 0, fail(repo.ErrFailedToDelete, res.Error)
	}
	return int(res.RowsAffected), nil
}
