package http

import (
	"github.com/gin-gonic/gin"

	"note-task-planner/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task by hand. due_date wins over deadline_phrase; with neither the task is undated.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       body      body   createReq true "Task"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(created, sc.Location())})
}

// SaveCandidate godoc
// @Summary     Save one reviewed candidate
// @Description Resolves the candidate's deadline phrase against the viewer's clock and stores it as a pending task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       true  "Owner id"
// @Param       tz        query  string       false "IANA timezone of the viewer"
// @Param       body      body   candidateReq true  "Candidate"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Invalid candidate"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/tasks/candidates [POST]
func (h *handler) SaveCandidate(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processCandidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	saved, err := h.uc.ResolveAndPersist(ctx, sc, req.toCandidate())
	if err != nil {
		h.l.Warnf(ctx, "uc.ResolveAndPersist: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(saved, sc.Location())})
}

// SaveBatch godoc
// @Summary     Save reviewed candidates
// @Description Saves each candidate independently. Candidates that fail are listed under skipped with a reason.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true  "Owner id"
// @Param       tz        query  string   false "IANA timezone of the viewer"
// @Param       body      body   batchReq true  "Candidates"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/batch [POST]
func (h *handler) SaveBatch(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SaveCandidates(ctx, sc, req.toCandidates())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveCandidates: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newBatchResp(out, sc.Location()))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task of the caller, newest first.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, listResp{Tasks: newTaskResps(tasks, sc.Location()), Count: len(tasks)})
}

// Week godoc
// @Summary     Week view
// @Description Tasks due in the last, current or next Sunday-to-Saturday week, bucketed by day. Undated pending tasks appear at the end of the current week.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       week      query  string false "last, current (default) or next"
// @Param       tz        query  string false "IANA timezone of the viewer"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Unknown week"
// @Router      /api/v1/tasks/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	anchor, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.WeekView(ctx, sc, anchor, sc.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.WeekView: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newWeekResp(out, sc.Location()))
}

// Stats godoc
// @Summary     Progress stats
// @Description Completion counts, streak, tree level and unlocked achievements. Derived on every call.
// @Tags        Stats
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       tz        query  string false "IANA timezone of the viewer"
// @Success     200 {object} statsResp
// @Failure     503 {object} response.Resp "Stats unavailable"
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Stats(ctx, sc, sc.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatsResp(out))
}

// Update godoc
// @Summary     Edit a task
// @Description Partial update. Setting status to completed stamps completed_at; setting it back to pending clears it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner id"
// @Param       id        path   string    true "Task ID"
// @Param       body      body   updateReq true "Fields to change"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(updated, sc.Location())})
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task completed. Completing an already completed task is a no-op.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	done, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, completeResp{Task: newTaskResp(done, sc.Location()), Celebration: true})
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{Deleted: 1})
}

// BulkDelete godoc
// @Summary     Delete several tasks
// @Description Deletes the listed tasks owned by the caller. Ids of other owners are ignored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Owner id"
// @Param       body      body   bulkDeleteReq true "Task ids"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/bulk-delete [POST]
func (h *handler) BulkDelete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processBulkDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.BulkDelete(ctx, sc, req.IDs)
	if err != nil {
		h.l.Warnf(ctx, "uc.BulkDelete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{Deleted: n})
}

// DeleteAll godoc
// @Summary     Delete all tasks
// @Description Permanently removes every task of the caller.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} deleteResp
// @Router      /api/v1/tasks [DELETE]
func (h *handler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.DeleteAll(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{Deleted: n})
}
