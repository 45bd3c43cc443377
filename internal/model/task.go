package model

import (
	"strings"
	"time"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps free text onto a Priority. ok is false for anything
// outside low/medium/high.
func ParsePriority(raw string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(raw))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}

// Status is the lifecycle state of a persisted task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus maps free text onto a Status.
func ParseStatus(raw string) (Status, bool) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusPending, StatusCompleted:
		return s, true
	}
	return "", false
}

// CandidateTask is an unpersisted task proposal produced by extraction.
type CandidateTask struct {
	Title          string
	Description    string
	Priority       Priority
	EstimatedHours *float64
	DeadlinePhrase string
}

// Task is a persisted task owned by exactly one user.
//
// A completed task always has CompletedAt set (and not before CreatedAt);
// a pending task never does. DueDate is an absolute instant.
type Task struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	Priority        Priority
	EstimatedHours  *float64
	DueDate         *time.Time
	Status          Status
	CreatedAt       time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
	CalendarEventID string
}

// IsCompleted reports whether the task is completed.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue reports whether a pending task's due date has passed at now.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status == StatusPending && t.DueDate != nil && t.DueDate.Before(now)
}
