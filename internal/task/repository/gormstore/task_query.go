package gormstore

import (
	"gorm.io/gorm"

	repo "note-task-planner/internal/task/repository"
)

func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListTasksOptions) *gorm.DB {
	q := db.Model(&taskRecord{}).Where("owner_id = ?", opt.OwnerID)

	if opt.UndatedOnly {
		q = q.Where("due_date IS NULL")
	}
	if opt.DueFrom != nil {
		q = q.Where("due_date >= ?", opt.DueFrom.UTC())
	}
	if opt.DueTo != nil {
		q = q.Where("due_date <= ?", opt.DueTo.UTC())
	}
	if opt.Status != "" {
		q = q.Where("status = ?", string(opt.Status))
	}
	return q
}
