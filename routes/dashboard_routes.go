package routes

import (
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-specific dashboard.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) SetupDashboardRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/dashboard")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/", h.Dashboard)
	}
}

func (h *DashboardHandler) Dashboard(ctx *gin.Context) {
	data, err := h.dashboardService.Dashboard(ctx.Request.Context(), actorFromContext(ctx))
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Dashboard fetched", data))
}
