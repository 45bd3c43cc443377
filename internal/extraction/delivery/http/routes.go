package http

import (
	"github.com/gin-gonic/gin"

	"note-task-planner/internal/middleware"
)

// RegisterRoutes maps the upload endpoints. All of them call the paid
// provider, so they are rate limited per owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	extractions := rg.Group("/extractions", mw.Auth(), mw.RateLimitExtraction())
	{
		extractions.POST("/image", h.ExtractImage)
		extractions.POST("/audio", h.ExtractAudio)
	}

	rg.POST("/tasks/voice", mw.Auth(), mw.RateLimitExtraction(), h.SaveVoice)
}
