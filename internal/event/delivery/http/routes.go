package http

import (
	"github.com/gin-gonic/gin"

	"smarteventadder/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that invoke the generative model are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	emails := rg.Group("/emails")
	{
		emails.POST("/parse", mw.RateLimit(), h.ParseEmail)
		emails.POST("/fetch", h.FetchEmail)
	}

	rg.POST("/events", h.CreateEvent)
	rg.POST("/workflow", mw.RateLimit(), h.CompleteWorkflow)
}
