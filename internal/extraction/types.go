package extraction

import "note-task-planner/internal/model"

// ExtractOutput is the result of running the whole pipeline on one upload.
type ExtractOutput struct {
	Text       string
	Candidates []model.CandidateTask
}
