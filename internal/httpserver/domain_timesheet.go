package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-timesheet/internal/middleware"
	timesheetHTTP "voice-timesheet/internal/timesheet/delivery/http"
)

// setupTimesheetDomain builds the timesheet HTTP handler and registers its routes.
func (srv HTTPServer) setupTimesheetDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := timesheetHTTP.New(srv.l, srv.timesheetUC, srv.uploadDir, srv.maxUploadBytes)

	// registers /api/v1/timesheet/*
	timesheetHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Timesheet domain registered")
	return nil
}
