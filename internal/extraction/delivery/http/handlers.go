package http

import (
	"github.com/gin-gonic/gin"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/response"
)

// ExtractImage godoc
// @Summary Extract candidate tasks from a photo of notes
// @Tags Extractions
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header string true "Owner ID"
// @Param image formData file true "Photo of handwritten or printed notes"
// @Success 200 {object} response.Resp{data=extractResp}
// @Failure 400 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Failure 415 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /extractions/image [post]
func (h *handler) ExtractImage(c *gin.Context) {
	h.extract(c, fieldImage, model.MediaKindImage)
}

// ExtractAudio godoc
// @Summary Extract candidate tasks from a voice memo
// @Tags Extractions
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header string true "Owner ID"
// @Param audio formData file true "Voice recording"
// @Success 200 {object} response.Resp{data=extractResp}
// @Failure 400 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Failure 415 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /extractions/audio [post]
func (h *handler) ExtractAudio(c *gin.Context) {
	h.extract(c, fieldAudio, model.MediaKindAudio)
}

func (h *handler) extract(c *gin.Context, field string, kind model.MediaKind) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	media, err := h.processUpload(c, field, kind)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExtractCandidates(ctx, sc, media)
	if err != nil {
		h.l.Warnf(ctx, "uc.ExtractCandidates: kind=%s err=%v", kind, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newExtractResp(out))
}

// SaveVoice godoc
// @Summary Turn a voice memo into saved tasks
// @Description Transcribes the recording, structures it and saves every valid candidate.
// @Tags Tasks
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header string true "Owner ID"
// @Param tz query string false "IANA timezone"
// @Param audio formData file true "Voice recording"
// @Success 200 {object} response.Resp{data=voiceResp}
// @Failure 400 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Failure 415 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /tasks/voice [post]
func (h *handler) SaveVoice(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	media, err := h.processUpload(c, fieldAudio, model.MediaKindAudio)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExtractCandidates(ctx, sc, media)
	if err != nil {
		h.l.Warnf(ctx, "uc.ExtractCandidates: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	saved, err := h.taskUC.SaveCandidates(ctx, sc, out.Candidates)
	if err != nil {
		h.l.Errorf(ctx, "taskUC.SaveCandidates: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.l.Infof(ctx, "voice memo saved: user=%s succeeded=%d skipped=%d", sc.UserID, saved.Succeeded, len(saved.Skipped))
	response.OK(c, newVoiceResp(out.Text, saved, sc.Location()))
}
