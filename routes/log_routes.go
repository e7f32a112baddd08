package routes

import (
	"net/http"
	"strconv"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// LogHandler wires the weekly log endpoints.
type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) SetupLogRoutes(r *gin.Engine) {
	apps := r.Group("/api/v1/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("/:id/logs", middleware.RequireRoles(model.RoleStudent), h.Submit)
		apps.GET("/:id/logs", h.List)
	}

	logs := r.Group("/api/v1/logs")
	logs.Use(middleware.AuthMiddleware())
	{
		logs.POST("/:id/review", middleware.RequireRoles(model.RoleFaculty), h.Review)
	}
}

// Submit accepts the multipart weekly log form. The file is mandatory.
func (h *LogHandler) Submit(ctx *gin.Context) {
	appID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	weekNumber, err := strconv.Atoi(ctx.PostForm("weekNumber"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid week number", err.Error(), nil))
		return
	}

	file, err := formFile(ctx, "file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Failed to read file", err.Error(), nil))
		return
	}

	entry, err := h.logService.Submit(ctx.Request.Context(), actorFromContext(ctx),
		appID, weekNumber, ctx.PostForm("description"), file)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Weekly log submitted", entry))
}

func (h *LogHandler) List(ctx *gin.Context) {
	appID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	logs, err := h.logService.List(ctx.Request.Context(), actorFromContext(ctx), appID)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Weekly logs fetched", logs))
}

func (h *LogHandler) Review(ctx *gin.Context) {
	logID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	if err := h.logService.Review(ctx.Request.Context(), actorFromContext(ctx), logID, input.Feedback); err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Weekly log reviewed", nil))
}
