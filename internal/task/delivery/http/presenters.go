package http

import (
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/internal/planner"
	"note-task-planner/internal/progress"
	"note-task-planner/internal/task"
	"note-task-planner/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	EstimatedHours *float64   `json:"estimated_hours"`
	DueDate        *time.Time `json:"due_date"`
	DeadlinePhrase string     `json:"deadline_phrase"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:          r.Title,
		Description:    r.Description,
		Priority:       r.Priority,
		EstimatedHours: r.EstimatedHours,
		DueDate:        r.DueDate,
		DeadlinePhrase: r.DeadlinePhrase,
	}
}

// ---

type candidateReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	EstimatedHours *float64 `json:"estimated_hours"`
	DeadlinePhrase string   `json:"deadline_phrase"`
}

func (r candidateReq) toCandidate() model.CandidateTask {
	return model.CandidateTask{
		Title:          r.Title,
		Description:    r.Description,
		Priority:       model.Priority(r.Priority),
		EstimatedHours: r.EstimatedHours,
		DeadlinePhrase: r.DeadlinePhrase,
	}
}

type batchReq struct {
	Candidates []candidateReq `json:"candidates" binding:"required"`
}

func (r batchReq) toCandidates() []model.CandidateTask {
	out := make([]model.CandidateTask, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.toCandidate()
	}
	return out
}

// ---

type updateReq struct {
	ID             string     `json:"-"` // populated from URI param
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Priority       *string    `json:"priority"`
	EstimatedHours *float64   `json:"estimated_hours"`
	DueDate        *time.Time `json:"due_date"`
	ClearDueDate   bool       `json:"clear_due_date"`
	Status         *string    `json:"status"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Priority:       r.Priority,
		EstimatedHours: r.EstimatedHours,
		DueDate:        r.DueDate,
		ClearDueDate:   r.ClearDueDate,
		Status:         r.Status,
	}
}

type bulkDeleteReq struct {
	IDs []string `json:"ids" binding:"required"`
}

type weekReq struct {
	Week string `form:"week"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Priority        string             `json:"priority"`
	EstimatedHours  *float64           `json:"estimated_hours,omitempty"`
	DueDate         *response.DateTime `json:"due_date,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       response.DateTime  `json:"created_at"`
	CompletedAt     *response.DateTime `json:"completed_at,omitempty"`
	CalendarEventID string             `json:"calendar_event_id,omitempty"`
}

// newTaskResp renders t in the viewer's timezone.
func newTaskResp(t model.Task, loc *time.Location) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        string(t.Priority),
		EstimatedHours:  t.EstimatedHours,
		DueDate:         response.NewDateTimePtr(inLoc(t.DueDate, loc)),
		Status:          string(t.Status),
		CreatedAt:       response.DateTime(t.CreatedAt.In(loc)),
		CompletedAt:     response.NewDateTimePtr(inLoc(t.CompletedAt, loc)),
		CalendarEventID: t.CalendarEventID,
	}
}

func inLoc(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}

func newTaskResps(tasks []model.Task, loc *time.Location) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t, loc)
	}
	return out
}

type taskEnvelope struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

type skippedResp struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type batchResp struct {
	Succeeded int           `json:"succeeded"`
	Tasks     []taskResp    `json:"tasks"`
	Skipped   []skippedResp `json:"skipped"`
}

func newBatchResp(out task.BatchResult, loc *time.Location) batchResp {
	skipped := make([]skippedResp, len(out.Skipped))
	for i, s := range out.Skipped {
		skipped[i] = skippedResp{Index: s.Index, Title: s.Title, Reason: s.Reason}
	}
	return batchResp{
		Succeeded: out.Succeeded,
		Tasks:     newTaskResps(out.Tasks, loc),
		Skipped:   skipped,
	}
}

type completeResp struct {
	Task        taskResp `json:"task"`
	Celebration bool     `json:"celebration"`
}

type deleteResp struct {
	Deleted int `json:"deleted"`
}

// ---

type weekTaskResp struct {
	taskResp
	Undated bool `json:"undated,omitempty"`
}

type dayResp struct {
	Date  response.Date  `json:"date"`
	Tasks []weekTaskResp `json:"tasks"`
}

type summaryResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

type weekResp struct {
	Week    string            `json:"week"`
	Start   response.DateTime `json:"start"`
	End     response.DateTime `json:"end"`
	Days    []dayResp         `json:"days"`
	Summary summaryResp       `json:"summary"`
}

func newWeekResp(out task.WeekViewOutput, loc *time.Location) weekResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayResp{Date: response.Date(d.Date), Tasks: newWeekTaskResps(d.Items, loc)}
	}
	return weekResp{
		Week:  string(out.Anchor),
		Start: response.DateTime(out.Start),
		End:   response.DateTime(out.End),
		Days:  days,
		Summary: summaryResp{
			Total:     out.Summary.Total,
			Completed: out.Summary.Completed,
			Pending:   out.Summary.Pending,
			Overdue:   out.Summary.Overdue,
		},
	}
}

func newWeekTaskResps(items []planner.Item, loc *time.Location) []weekTaskResp {
	out := make([]weekTaskResp, len(items))
	for i, it := range items {
		out[i] = weekTaskResp{taskResp: newTaskResp(it.Task, loc), Undated: it.Undated}
	}
	return out
}

// ---

type levelResp struct {
	Current   int     `json:"current"`
	IntoLevel int     `json:"into_level"`
	ToNext    int     `json:"to_next"`
	Percent   float64 `json:"percent"`
}

type achievementResp struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type dayCountResp struct {
	Date      response.Date `json:"date"`
	Completed int           `json:"completed"`
}

type statsResp struct {
	TotalCompleted    int               `json:"total_completed"`
	CompletedThisWeek int               `json:"completed_this_week"`
	OverdueTasks      int               `json:"overdue_tasks"`
	CurrentStreak     int               `json:"current_streak"`
	TreeLevel         int               `json:"tree_level"`
	Level             levelResp         `json:"level"`
	Stage             string            `json:"stage"`
	Achievements      []achievementResp `json:"achievements"`
	Daily             []dayCountResp    `json:"daily"`
}

func newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		TotalCompleted:    out.TotalCompleted,
		CompletedThisWeek: out.CompletedThisWeek,
		OverdueTasks:      out.OverdueTasks,
		CurrentStreak:     out.CurrentStreak,
		TreeLevel:         out.TreeLevel,
		Level: levelResp{
			Current:   out.Level.Current,
			IntoLevel: out.Level.IntoLevel,
			ToNext:    out.Level.ToNext,
			Percent:   out.Level.Percent,
		},
		Stage:        out.Stage,
		Achievements: newAchievementResps(out.Achievements),
		Daily:        newDayCountResps(out.Daily),
	}
}

func newAchievementResps(in []progress.Achievement) []achievementResp {
	out := make([]achievementResp, len(in))
	for i, a := range in {
		out[i] = achievementResp{Key: a.Key, Title: a.Title, Description: a.Description}
	}
	return out
}

func newDayCountResps(in []progress.DayCount) []dayCountResp {
	out := make([]dayCountResp, len(in))
	for i, d := range in {
		out[i] = dayCountResp{Date: response.Date(d.Date), Completed: d.Completed}
	}
	return out
}
