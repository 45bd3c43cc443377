package http

import (
	"github.com/gin-gonic/gin"

	"note-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires an owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.DELETE("", h.DeleteAll)
		tasks.GET("/week", h.Week)
		tasks.POST("/candidates", h.SaveCandidate)
		tasks.POST("/batch", h.SaveBatch)
		tasks.POST("/bulk-delete", h.BulkDelete)
		tasks.PATCH("/:id", h.Update)
		tasks.POST("/:id/complete", h.Complete)
		tasks.DELETE("/:id", h.Delete)
	}

	rg.GET("/stats", mw.Auth(), h.Stats)
}
