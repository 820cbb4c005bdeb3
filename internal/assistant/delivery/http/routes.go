package http

import (
	"github.com/gin-gonic/gin"

	"agri-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The chat
// endpoint drives two model calls per request, so it alone is rate
// limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/history", h.History)
	rg.GET("/profile", h.Profile)
	rg.DELETE("/profile", h.ClearProfile)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.SubmitReport)
		reports.GET("", h.ListReports)
	}
}
