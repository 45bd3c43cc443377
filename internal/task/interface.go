package task

import (
	"context"
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/datemath"
	"note-task-planner/pkg/gcalendar"
)

// UseCase defines the business logic interface for the task domain.
// Every method is scoped to sc.UserID; other owners' tasks are invisible.
type UseCase interface {
	// ResolveAndPersist turns a reviewed candidate into a stored pending task,
	// resolving its deadline phrase against the viewer's clock.
	ResolveAndPersist(ctx context.Context, sc model.Scope, candidate model.CandidateTask) (model.Task, error)

	// SaveCandidates persists each candidate independently and reports which ones were skipped.
	SaveCandidates(ctx context.Context, sc model.Scope, candidates []model.CandidateTask) (BatchResult, error)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope) ([]model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	BulkDelete(ctx context.Context, sc model.Scope, ids []string) (int, error)
	DeleteAll(ctx context.Context, sc model.Scope) (int, error)

	// WeekView groups the owner's tasks into the seven days of the anchored week.
	WeekView(ctx context.Context, sc model.Scope, anchor datemath.WeekAnchor, now time.Time) (WeekViewOutput, error)

	// Stats derives the progress snapshot. Nothing is written.
	Stats(ctx context.Context, sc model.Scope, now time.Time) (StatsOutput, error)
}

// Calendar mirrors dated tasks into an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
