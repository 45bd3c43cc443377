package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/datemath"
	pkgErrors "note-task-planner/pkg/errors"
)

// scope returns the owner placed on the request by the Auth middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCandidateReq(c *gin.Context) (candidateReq, error) {
	var req candidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processBatchReq(c *gin.Context) (batchReq, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func (h *handler) processBulkDeleteReq(c *gin.Context) (bulkDeleteReq, error) {
	var req bulkDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processWeekReq(c *gin.Context) (datemath.WeekAnchor, error) {
	var req weekReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", err
	}
	return datemath.ParseWeekAnchor(req.Week)
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
