package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"note-task-planner/internal/model"
	pkgErrors "note-task-planner/pkg/errors"
)

const (
	fieldImage = "image"
	fieldAudio = "audio"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processUpload reads the multipart field and checks it is of the wanted kind.
// The declared type wins unless it is missing or generic, in which case the
// bytes are sniffed.
func (h *handler) processUpload(c *gin.Context, field string, want model.MediaKind) (model.RawMedia, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+(1<<20))

	fh, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.RawMedia{}, errFileTooLarge
		}
		return model.RawMedia{}, errMissingFile
	}
	if fh.Size > h.maxUploadBytes {
		return model.RawMedia{}, errFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return model.RawMedia{}, errMissingFile
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		return model.RawMedia{}, errMissingFile
	}
	if len(data) == 0 {
		return model.RawMedia{}, errMissingFile
	}
	if int64(len(data)) > h.maxUploadBytes {
		return model.RawMedia{}, errFileTooLarge
	}

	media := model.RawMedia{Data: data, MIMEType: mediaType(fh.Header.Get("Content-Type"), data)}
	if media.Kind() != want {
		return model.RawMedia{}, errUnsupportedMedia
	}
	return media, nil
}

// mediaType strips parameters from the declared type and falls back to
// sniffing when the client sent nothing useful.
func mediaType(declared string, data []byte) string {
	if mt, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mt
	} else {
		declared = ""
	}
	declared = strings.ToLower(declared)
	if declared == "" || declared == "application/octet-stream" {
		detected := mimetype.Detect(data).String()
		if mt, _, err := mime.ParseMediaType(detected); err == nil {
			return mt
		}
		return detected
	}
	return declared
}
