package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository"
	"note-task-planner/pkg/gcalendar"
)

const maxTitleLength = 50

// clock returns the current instant in the viewer's timezone.
func (uc *implUseCase) clock(sc model.Scope) time.Time {
	return uc.now().In(sc.Location())
}

// ownerTasks returns every task of the owner, served from the cache when warm.
func (uc *implUseCase) ownerTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if cached, ok := uc.cache.Get(sc.UserID); ok {
		return slices.Clone(cached), nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: sc.UserID})
	if err != nil {
		return nil, err
	}
	uc.cache.Add(sc.UserID, tasks)
	return slices.Clone(tasks), nil
}

func (uc *implUseCase) invalidate(sc model.Scope) {
	uc.cache.Remove(sc.UserID)
}

// mapRepoError turns store errors into domain errors, keeping the cause.
func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFoundOrForbidden
	}
	return fmt.Errorf("%w: %w", task.ErrPersistenceFailed, err)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", task.ErrInvalidCandidate)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("%w: title is longer than %d characters", task.ErrInvalidCandidate, maxTitleLength)
	}
	return title, nil
}

// parsePriority defaults a blank priority to medium and rejects unknown ones.
func parsePriority(raw string) (model.Priority, error) {
	if strings.TrimSpace(raw) == "" {
		return model.PriorityMedium, nil
	}
	p, ok := model.ParsePriority(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown priority %q", task.ErrInvalidCandidate, raw)
	}
	return p, nil
}

func validateHours(h *float64) error {
	if h != nil && *h <= 0 {
		return fmt.Errorf("%w: estimated hours must be positive", task.ErrInvalidCandidate)
	}
	return nil
}

// skipReason is the short message shown for a candidate that was not saved.
func skipReason(err error) string {
	switch {
	case errors.Is(err, task.ErrInvalidCandidate):
		return err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "request cancelled"
	default:
		return task.ErrPersistenceFailed.Error()
	}
}

// mirrorToCalendar creates a calendar event for a dated task and records its id.
// Calendar failures are logged and never fail the save.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, sc model.Scope, t model.Task) model.Task {
	if uc.calendar == nil || t.DueDate == nil {
		return t
	}

	start := t.DueDate.In(sc.Location())
	duration := time.Hour
	if t.EstimatedHours != nil {
		duration = time.Duration(*t.EstimatedHours * float64(time.Hour))
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(duration),
		Timezone:    sc.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.mirrorToCalendar: event for %q failed (non-fatal): %v", t.Title, err)
		return t
	}

	updated, err := uc.repo.UpdateTask(ctx, updateOptions(t, func(o *repository.UpdateTaskOptions) {
		o.CalendarEventID = event.ID
	}))
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.mirrorToCalendar: saving event id for %s failed: %v", t.ID, err)
		return t
	}
	return updated
}

func (uc *implUseCase) removeFromCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "task.usecase.removeFromCalendar: task %s event %s: %v", t.ID, t.CalendarEventID, err)
	}
}

// updateOptions copies t into a full-replacement update and applies edit.
func updateOptions(t model.Task, edit func(o *repository.UpdateTaskOptions)) repository.UpdateTaskOptions {
	opt := repository.UpdateTaskOptions{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        t.Priority,
		EstimatedHours:  t.EstimatedHours,
		DueDate:         t.DueDate,
		Status:          t.Status,
		CompletedAt:     t.CompletedAt,
		CalendarEventID: t.CalendarEventID,
	}
	if edit != nil {
		edit(&opt)
	}
	return opt
}
