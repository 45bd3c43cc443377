package http

import (
	"note-task-planner/internal/extraction"
	"note-task-planner/internal/task"
	pkgLog "note-task-planner/pkg/log"
)

// DefaultMaxUploadBytes bounds an upload when no limit is configured.
const DefaultMaxUploadBytes int64 = 10 << 20

type handler struct {
	l              pkgLog.Logger
	uc             extraction.UseCase
	taskUC         task.UseCase
	maxUploadBytes int64
}

// New creates the extraction HTTP handler. taskUC backs the voice flow that
// saves every extracted candidate.
func New(l pkgLog.Logger, uc extraction.UseCase, taskUC task.UseCase, maxUploadBytes int64) *handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &handler{
		l:              l,
		uc:             uc,
		taskUC:         taskUC,
		maxUploadBytes: maxUploadBytes,
	}
}
