package routes

import (
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// CompletionHandler wires the internship completion endpoints.
type CompletionHandler struct {
	completionService service.CompletionService
}

func NewCompletionHandler(completionService service.CompletionService) *CompletionHandler {
	return &CompletionHandler{completionService: completionService}
}

func (h *CompletionHandler) SetupCompletionRoutes(r *gin.Engine) {
	apps := r.Group("/api/v1/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("/:id/completion", middleware.RequireRoles(model.RoleStudent), h.Submit)
		apps.GET("/:id/completion", h.Get)
	}

	completions := r.Group("/api/v1/completions")
	completions.Use(middleware.AuthMiddleware())
	{
		completions.POST("/:id/verify", middleware.RequireRoles(model.RoleFaculty, model.RoleAdmin), h.Verify)
	}
}

func (h *CompletionHandler) Submit(ctx *gin.Context) {
	appID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	certificate, err := formFile(ctx, "certificate")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Failed to read certificate", err.Error(), nil))
		return
	}

	completion, err := h.completionService.Submit(ctx.Request.Context(), actorFromContext(ctx), appID, certificate)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Completion submitted", completion))
}

func (h *CompletionHandler) Get(ctx *gin.Context) {
	appID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	completion, err := h.completionService.Get(ctx.Request.Context(), actorFromContext(ctx), appID)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Completion fetched", completion))
}

func (h *CompletionHandler) Verify(ctx *gin.Context) {
	completionID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	if err := h.completionService.Verify(ctx.Request.Context(), actorFromContext(ctx), completionID, input.Decision); err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Completion verified", nil))
}
