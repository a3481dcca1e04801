package http

import (
	"meetmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	scheduling := rg.Group("/scheduling")
	{
		scheduling.POST("/analyze", mw.RateLimit(), h.Analyze)
		scheduling.POST("/recommend", mw.RateLimit(), h.Recommend)
	}
}
