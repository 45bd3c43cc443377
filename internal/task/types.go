package task

import (
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/internal/planner"
	"note-task-planner/internal/progress"
	"note-task-planner/pkg/datemath"
)

// CreateInput is a manually entered task. DueDate wins over DeadlinePhrase;
// with neither the task stays undated.
type CreateInput struct {
	Title          string
	Description    string
	Priority       string
	EstimatedHours *float64
	DueDate        *time.Time
	DeadlinePhrase string
}

// UpdateInput is a partial edit. Nil fields are left untouched.
type UpdateInput struct {
	ID             string
	Title          *string
	Description    *string
	Priority       *string
	EstimatedHours *float64
	DueDate        *time.Time
	ClearDueDate   bool
	Status         *string
}

// SkippedCandidate explains why one candidate of a batch was not saved.
type SkippedCandidate struct {
	Index  int
	Title  string
	Reason string
}

// BatchResult is the outcome of a best-effort batch save.
type BatchResult struct {
	Succeeded int
	Tasks     []model.Task
	Skipped   []SkippedCandidate
}

// WeekViewOutput is one Sunday-to-Saturday window with its tasks bucketed by day.
type WeekViewOutput struct {
	Anchor  datemath.WeekAnchor
	Start   time.Time
	End     time.Time
	Days    []planner.DayBucket
	Summary planner.Summary
}

// StatsOutput is the derived progress snapshot.
type StatsOutput struct {
	model.UserStats
	Level        progress.Level
	Stage        string
	Achievements []progress.Achievement
	Daily        []progress.DayCount
}
