package http

import (
	"errors"
	"net/http"

	"note-task-planner/internal/task"
	pkgErrors "note-task-planner/pkg/errors"
)

var (
	errNotFound         = pkgErrors.NewHTTPErrorWithCode(http.StatusNotFound, 140404, "task not found")
	errPersistence      = pkgErrors.NewHTTPErrorWithCode(http.StatusServiceUnavailable, 140503, "tasks could not be saved, please try again")
	errStatsUnavailable = pkgErrors.NewHTTPErrorWithCode(http.StatusServiceUnavailable, 140504, "stats are unavailable right now")
	errMissingID        = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 140400, "task id is required")
)

// mapError translates task errors into HTTP errors from pkg/errors. The
// underlying cause is only ever logged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidCandidate):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 140422, err.Error())
	case errors.Is(err, task.ErrNotFoundOrForbidden):
		return errNotFound
	case errors.Is(err, task.ErrStatsUnavailable):
		return errStatsUnavailable
	case errors.Is(err, task.ErrPersistenceFailed):
		return errPersistence
	default:
		return pkgErrors.ErrInternalServerError
	}
}
