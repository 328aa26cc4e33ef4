package http

import (
	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/middleware"
)

// RegisterRoutes maps the timesheet endpoints under rg. All routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ts := rg.Group("/timesheet", mw.RateLimit())
	{
		ts.POST("/upload", h.Upload)
		ts.POST("/preview", h.Preview)
		ts.POST("/submit", h.Submit)
	}
}
