package routes

import (
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// ProofHandler wires the progress proof endpoints.
type ProofHandler struct {
	proofService service.ProofService
}

func NewProofHandler(proofService service.ProofService) *ProofHandler {
	return &ProofHandler{proofService: proofService}
}

func (h *ProofHandler) SetupProofRoutes(r *gin.Engine) {
	apps := r.Group("/api/v1/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("/:id/proofs", middleware.RequireRoles(model.RoleStudent), h.Submit)
		apps.GET("/:id/proofs", h.List)
	}

	proofs := r.Group("/api/v1/proofs")
	proofs.Use(middleware.AuthMiddleware())
	{
		proofs.POST("/:id/verify", middleware.RequireRoles(model.RoleFaculty, model.RoleAdmin), h.Verify)
	}
}

func (h *ProofHandler) Submit(ctx *gin.Context) {
	appID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var form struct {
		ProofType   string `form:"proofType" binding:"required"`
		Title       string `form:"title" binding:"required"`
		Description string `form:"description"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	file, err := formFile(ctx, "file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Failed to read file", err.Error(), nil))
		return
	}

	proof, err := h.proofService.Submit(ctx.Request.Context(), actorFromContext(ctx), appID, service.SubmitProofInput{
		ProofType:   form.ProofType,
		Title:       form.Title,
		Description: form.Description,
		File:        file,
	})
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Progress proof submitted", proof))
}

func (h *ProofHandler) List(ctx *gin.Context) {
	appID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	proofs, err := h.proofService.List(ctx.Request.Context(), actorFromContext(ctx), appID)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Progress proofs fetched", proofs))
}

func (h *ProofHandler) Verify(ctx *gin.Context) {
	proofID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var input struct {
		Decision string `json:"decision" binding:"required"`
		Remarks  string `json:"remarks" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	if err := h.proofService.Verify(ctx.Request.Context(), actorFromContext(ctx), proofID, input.Decision, input.Remarks); err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Progress proof verified", nil))
}
