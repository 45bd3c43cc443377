package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrInvalidCandidate    = errors.New("invalid task")
	ErrPersistenceFailed   = errors.New("task could not be saved")
	ErrNotFoundOrForbidden = errors.New("task not found")
	ErrStatsUnavailable    = errors.New("stats unavailable")
)
