package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository"
	pkgLog "note-task-planner/pkg/log"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 5 * time.Minute
)

// Config tunes the task usecase. Zero values pick the defaults.
type Config struct {
	// CalendarID names the Google Calendar that mirrors dated tasks.
	CalendarID string
	CacheSize  int
	CacheTTL   time.Duration
	// Now overrides the clock used for deadlines and completion stamps.
	Now func() time.Time
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	calendar   task.Calendar
	calendarID string
	cache      *expirable.LRU[string, []model.Task]
	now        func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil.
func New(l pkgLog.Logger, repo repository.TaskRepository, calendar task.Calendar, cfg Config) task.UseCase {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: cfg.CalendarID,
		cache:      expirable.NewLRU[string, []model.Task](size, nil, ttl),
		now:        now,
	}
}
