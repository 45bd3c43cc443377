package usecase

import (
	"context"
	"fmt"
	"strings"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/model"
)

// StructureTasks turns text into candidate tasks. A reply that cannot be
// decoded yields zero candidates rather than an error; only a failed or timed
// out provider call is an error.
func (uc *implUseCase) StructureTasks(ctx context.Context, text string) ([]model.CandidateTask, error) {
	if strings.TrimSpace(text) == "" {
		return []model.CandidateTask{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.provider.StructureTasks(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", extraction.ErrStructuringFailed, err)
	}

	candidates, ok := decodeCandidates(raw)
	if !ok {
		uc.l.Warnf(ctx, "extraction.StructureTasks: reply is not a task list, raw=%q", truncateForLog(raw))
	}
	return candidates, nil
}

func truncateForLog(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
