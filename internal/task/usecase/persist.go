package usecase

import (
	"context"
	"strings"

	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository"
	"note-task-planner/pkg/datemath"
)

// ResolveAndPersist resolves the candidate's deadline phrase and stores it as a pending task.
func (uc *implUseCase) ResolveAndPersist(ctx context.Context, sc model.Scope, candidate model.CandidateTask) (model.Task, error) {
	title, err := validateTitle(candidate.Title)
	if err != nil {
		return model.Task{}, err
	}
	priority, err := parsePriority(string(candidate.Priority))
	if err != nil {
		return model.Task{}, err
	}
	if err := validateHours(candidate.EstimatedHours); err != nil {
		return model.Task{}, err
	}

	now := uc.clock(sc)
	due := datemath.ResolveDeadline(candidate.DeadlinePhrase, now)
	rule, _ := datemath.MatchDeadlineRule(candidate.DeadlinePhrase)
	uc.l.Debugf(ctx, "task.usecase.ResolveAndPersist: phrase=%q rule=%s due=%s",
		candidate.DeadlinePhrase, rule.Name, due.Format("2006-01-02"))

	return uc.persist(ctx, sc, repository.CreateTaskOptions{
		OwnerID:        sc.UserID,
		Title:          title,
		Description:    strings.TrimSpace(candidate.Description),
		Priority:       priority,
		EstimatedHours: candidate.EstimatedHours,
		DueDate:        &due,
		Status:         model.StatusPending,
	})
}

// SaveCandidates writes each candidate on its own; one failure never blocks the others.
func (uc *implUseCase) SaveCandidates(ctx context.Context, sc model.Scope, candidates []model.CandidateTask) (task.BatchResult, error) {
	result := task.BatchResult{
		Tasks:   make([]model.Task, 0, len(candidates)),
		Skipped: []task.SkippedCandidate{},
	}

	for i, c := range candidates {
		saved, err := uc.ResolveAndPersist(ctx, sc, c)
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.SaveCandidates: user=%s index=%d title=%q: %v", sc.UserID, i, c.Title, err)
			result.Skipped = append(result.Skipped, task.SkippedCandidate{
				Index:  i,
				Title:  c.Title,
				Reason: skipReason(err),
			})
			continue
		}
		result.Tasks = append(result.Tasks, saved)
	}
	result.Succeeded = len(result.Tasks)

	uc.l.Infof(ctx, "task.usecase.SaveCandidates: user=%s succeeded=%d skipped=%d",
		sc.UserID, result.Succeeded, len(result.Skipped))
	return result, nil
}

// Create stores a manually entered task. An explicit due date wins; a phrase
// is resolved only when given; otherwise the task stays undated.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return model.Task{}, err
	}
	if err := validateHours(input.EstimatedHours); err != nil {
		return model.Task{}, err
	}

	due := input.DueDate
	if due == nil && strings.TrimSpace(input.DeadlinePhrase) != "" {
		resolved := datemath.ResolveDeadline(input.DeadlinePhrase, uc.clock(sc))
		due = &resolved
	}

	return uc.persist(ctx, sc, repository.CreateTaskOptions{
		OwnerID:        sc.UserID,
		Title:          title,
		Description:    strings.TrimSpace(input.Description),
		Priority:       priority,
		EstimatedHours: input.EstimatedHours,
		DueDate:        due,
		Status:         model.StatusPending,
	})
}

func (uc *implUseCase) persist(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	mirrored := uc.mirrorToCalendar(ctx, sc, created)
	uc.invalidate(sc)
	return mirrored, nil
}
