package usecase

import (
	"time"

	"note-task-planner/internal/extraction"
	pkgLog "note-task-planner/pkg/log"
)

// DefaultTimeout bounds each provider call when none is configured.
const DefaultTimeout = 30 * time.Second

type implUseCase struct {
	l        pkgLog.Logger
	provider extraction.TextProvider
	timeout  time.Duration
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, provider extraction.TextProvider, timeout time.Duration) extraction.UseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implUseCase{
		l:        l,
		provider: provider,
		timeout:  timeout,
	}
}
