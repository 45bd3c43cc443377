package http

import (
	"errors"
	"net/http"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/task"
	pkgErrors "note-task-planner/pkg/errors"
)

var (
	errMissingFile      = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, 150400, "no file was uploaded")
	errFileTooLarge     = pkgErrors.NewHTTPErrorWithCode(http.StatusRequestEntityTooLarge, 150413, "file is too large")
	errUnsupportedMedia = pkgErrors.NewHTTPErrorWithCode(http.StatusUnsupportedMediaType, 150415, "unsupported file type")
	errNoText           = pkgErrors.NewHTTPErrorWithCode(http.StatusUnprocessableEntity, 150422, "no text could be read from the upload")
	errExtraction       = pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, 150502, "could not read the upload, please try again")
	errStructuring      = pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, 150503, "could not turn the text into tasks, please try again")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrUnsupportedMedia):
		return errUnsupportedMedia
	case errors.Is(err, extraction.ErrNoTextExtracted):
		return errNoText
	case errors.Is(err, extraction.ErrExtractionFailed):
		return errExtraction
	case errors.Is(err, extraction.ErrStructuringFailed):
		return errStructuring
	case errors.Is(err, task.ErrPersistenceFailed):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusServiceUnavailable, 140503, "tasks could not be saved, please try again")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
