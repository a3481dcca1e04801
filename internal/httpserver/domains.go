package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	followupHTTP "meetmate/internal/followup/delivery/http"
	"meetmate/internal/middleware"
	schedulingHTTP "meetmate/internal/scheduling/delivery/http"
)

// setupSchedulingDomain registers /api/v1/scheduling routes.
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := schedulingHTTP.New(srv.l, srv.schedulingUC)
	schedulingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Scheduling domain registered")
}

// setupFollowUpDomain registers /api/v1/followup routes.
func (srv HTTPServer) setupFollowUpDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := followupHTTP.New(srv.l, srv.followUpUC)
	followupHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Follow-up domain registered")
}
