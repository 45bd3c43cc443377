package usecase

import (
	"context"
	"fmt"
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/internal/planner"
	"note-task-planner/internal/progress"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository"
	"note-task-planner/pkg/datemath"
)

// WeekView loads the tasks due inside the anchored week, plus undated
// pending ones for the current week, and buckets them by day.
func (uc *implUseCase) WeekView(ctx context.Context, sc model.Scope, anchor datemath.WeekAnchor, now time.Time) (task.WeekViewOutput, error) {
	now = now.In(sc.Location())
	win := datemath.WeekWindow(anchor, now)

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
		DueFrom: &win.Start,
		DueTo:   &win.End,
	})
	if err != nil {
		return task.WeekViewOutput{}, mapRepoError(err)
	}

	if win.Anchor == datemath.WeekCurrent {
		undated, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
			OwnerID:     sc.UserID,
			UndatedOnly: true,
			Status:      model.StatusPending,
		})
		if err != nil {
			return task.WeekViewOutput{}, mapRepoError(err)
		}
		tasks = append(tasks, undated...)
	}

	items := planner.TasksInWindow(tasks, win)
	return task.WeekViewOutput{
		Anchor:  win.Anchor,
		Start:   win.Start,
		End:     win.End,
		Days:    planner.BucketWeek(items, win),
		Summary: planner.Summarize(items, now),
	}, nil
}

// Stats derives the owner's progress snapshot as of now.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, now time.Time) (task.StatsOutput, error) {
	tasks, err := uc.ownerTasks(ctx, sc)
	if err != nil {
		return task.StatsOutput{}, fmt.Errorf("%w: %w", task.ErrStatsUnavailable, err)
	}

	now = now.In(sc.Location())
	stats := progress.Compute(tasks, now)
	level := progress.LevelProgress(stats.TotalCompleted)

	return task.StatsOutput{
		UserStats:    stats,
		Level:        level,
		Stage:        progress.Stage(level.Current),
		Achievements: progress.Achievements(stats),
		Daily:        progress.DailyCompletions(tasks, now),
	}, nil
}
