package http

import (
	"time"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/pkg/response"
)

type candidateResp struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Priority       string   `json:"priority"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DeadlinePhrase string   `json:"deadline_phrase,omitempty"`
}

type extractResp struct {
	Text       string          `json:"text"`
	Candidates []candidateResp `json:"candidates"`
}

func newExtractResp(out extraction.ExtractOutput) extractResp {
	return extractResp{Text: out.Text, Candidates: newCandidateResps(out.Candidates)}
}

func newCandidateResps(in []model.CandidateTask) []candidateResp {
	out := make([]candidateResp, len(in))
	for i, c := range in {
		out[i] = candidateResp{
			Title:          c.Title,
			Description:    c.Description,
			Priority:       string(c.Priority),
			EstimatedHours: c.EstimatedHours,
			DeadlinePhrase: c.DeadlinePhrase,
		}
	}
	return out
}

type savedTaskResp struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Priority string             `json:"priority"`
	DueDate  *response.DateTime `json:"due_date,omitempty"`
	Status   string             `json:"status"`
}

type skippedResp struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type voiceResp struct {
	Text      string          `json:"text"`
	Succeeded int             `json:"succeeded"`
	Tasks     []savedTaskResp `json:"tasks"`
	Skipped   []skippedResp   `json:"skipped"`
}

func newVoiceResp(text string, out task.BatchResult, loc *time.Location) voiceResp {
	tasks := make([]savedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		var due *time.Time
		if t.DueDate != nil {
			v := t.DueDate.In(loc)
			due = &v
		}
		tasks[i] = savedTaskResp{
			ID:       t.ID,
			Title:    t.Title,
			Priority: string(t.Priority),
			DueDate:  response.NewDateTimePtr(due),
			Status:   string(t.Status),
		}
	}
	skipped := make([]skippedResp, len(out.Skipped))
	for i, s := range out.Skipped {
		skipped[i] = skippedResp{Index: s.Index, Title: s.Title, Reason: s.Reason}
	}
	return voiceResp{Text: text, Succeeded: out.Succeeded, Tasks: tasks, Skipped: skipped}
}
