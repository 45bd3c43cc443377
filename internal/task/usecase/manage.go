package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository"
)

// List returns the owner's tasks newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.ownerTasks(ctx, sc)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return tasks, nil
}

// Update applies a partial edit. Moving to completed stamps CompletedAt;
// reopening clears it. A changed due date moves the calendar event.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	current, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: input.ID, OwnerID: sc.UserID})
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}

	opt := updateOptions(current, nil)
	if input.Title != nil {
		if opt.Title, err = validateTitle(*input.Title); err != nil {
			return model.Task{}, err
		}
	}
	if input.Description != nil {
		opt.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		if opt.Priority, err = parsePriority(*input.Priority); err != nil {
			return model.Task{}, err
		}
	}
	if input.EstimatedHours != nil {
		if err := validateHours(input.EstimatedHours); err != nil {
			return model.Task{}, err
		}
		opt.EstimatedHours = input.EstimatedHours
	}
	switch {
	case input.ClearDueDate:
		opt.DueDate = nil
	case input.DueDate != nil:
		opt.DueDate = input.DueDate
	}
	if input.Status != nil {
		status, ok := model.ParseStatus(*input.Status)
		if !ok {
			return model.Task{}, fmt.Errorf("%w: unknown status %q", task.ErrInvalidCandidate, *input.Status)
		}
		uc.applyStatus(&opt, current, status)
	}

	moved := !sameDue(current.DueDate, opt.DueDate)
	if moved {
		opt.CalendarEventID = ""
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	if moved {
		uc.removeFromCalendar(ctx, current)
		updated = uc.mirrorToCalendar(ctx, sc, updated)
	}
	uc.invalidate(sc)
	return updated, nil
}

func sameDue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Complete marks a task done. Completing an already completed task is a no-op.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	current, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	if current.IsCompleted() {
		return current, nil
	}

	opt := updateOptions(current, nil)
	uc.applyStatus(&opt, current, model.StatusCompleted)

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	uc.invalidate(sc)

	uc.l.Infof(ctx, "task.usecase.Complete: user=%s task=%s", sc.UserID, id)
	return updated, nil
}

// applyStatus keeps CompletedAt consistent with the status.
func (uc *implUseCase) applyStatus(opt *repository.UpdateTaskOptions, current model.Task, status model.Status) {
	if status == current.Status {
		return
	}
	opt.Status = status
	if status == model.StatusPending {
		opt.CompletedAt = nil
		return
	}
	completedAt := uc.now().UTC()
	if completedAt.Before(current.CreatedAt) {
		completedAt = current.CreatedAt
	}
	opt.CompletedAt = &completedAt
}

// Delete removes one task of the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	current, err := uc.repo.GetTask(ctx, repository.GetTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		return mapRepoError(err)
	}
	if err := uc.repo.DeleteTask(ctx, repository.GetTaskOptions{ID: id, OwnerID: sc.UserID}); err != nil {
		return mapRepoError(err)
	}
	uc.invalidate(sc)
	uc.removeFromCalendar(ctx, current)
	return nil
}

// BulkDelete removes the listed tasks that belong to the caller. Ids owned
// by someone else are silently ignored.
func (uc *implUseCase) BulkDelete(ctx context.Context, sc model.Scope, ids []string) (int, error) {
	wanted := mapset.NewSet[string]()
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			wanted.Add(id)
		}
	}
	if wanted.Cardinality() == 0 {
		return 0, fmt.Errorf("%w: no task ids given", task.ErrInvalidCandidate)
	}

	// Event ids come from the store; a cached copy may predate the mirror.
	owned, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: sc.UserID})
	if err != nil {
		return 0, mapRepoError(err)
	}

	n, err := uc.repo.DeleteTasks(ctx, sc.UserID, wanted.ToSlice())
	if err != nil {
		return 0, mapRepoError(err)
	}
	uc.invalidate(sc)

	for _, t := range owned {
		if wanted.Contains(t.ID) {
			uc.removeFromCalendar(ctx, t)
		}
	}

	uc.l.Infof(ctx, "task.usecase.BulkDelete: user=%s requested=%d deleted=%d", sc.UserID, wanted.Cardinality(), n)
	return n, nil
}

// DeleteAll removes every task of the caller.
func (uc *implUseCase) DeleteAll(ctx context.Context, sc model.Scope) (int, error) {
	owned, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: sc.UserID})
	if err != nil {
		return 0, mapRepoError(err)
	}

	n, err := uc.repo.DeleteAllTasks(ctx, sc.UserID)
	if err != nil {
		return 0, mapRepoError(err)
	}
	uc.invalidate(sc)

	for _, t := range owned {
		uc.removeFromCalendar(ctx, t)
	}

	uc.l.Infof(ctx, "task.usecase.DeleteAll: user=%s deleted=%d", sc.UserID, n)
	return n, nil
}
