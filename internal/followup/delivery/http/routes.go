package http

import (
	"meetmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	followup := rg.Group("/followup")
	{
		followup.POST("/analyze", mw.RateLimit(), h.Analyze)
		followup.POST("/process", mw.RateLimit(), h.Process)
		followup.GET("/report", mw.RateLimit(), h.Report)
	}
}
