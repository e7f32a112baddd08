package routes

import (
	"net/http"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ApplicationHandler wires the internship application endpoints.
type ApplicationHandler struct {
	appService service.ApplicationService
}

func NewApplicationHandler(appService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

func (h *ApplicationHandler) SetupApplicationRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/applications")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/", middleware.RequireRoles(model.RoleStudent), h.Create)
		g.GET("/", h.List)
		g.GET("/:id", h.Get)
		g.POST("/:id/review", middleware.RequireRoles(model.RoleFaculty, model.RoleAdmin), h.Review)
	}
}

// Create accepts the multipart application form with the offer letter and
// NOC attachments.
func (h *ApplicationHandler) Create(ctx *gin.Context) {
	var form struct {
		CompanyName      string `form:"companyName" binding:"required"`
		InternshipDomain string `form:"internshipDomain" binding:"required"`
		InternshipMode   string `form:"internshipMode" binding:"required"`
		StartDate        string `form:"startDate" binding:"required"`
		EndDate          string `form:"endDate" binding:"required"`
	}

	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	startDate, err := time.Parse(dateLayout, form.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid start date, use YYYY-MM-DD", err.Error(), nil))
		return
	}
	endDate, err := time.Parse(dateLayout, form.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid end date, use YYYY-MM-DD", err.Error(), nil))
		return
	}

	offerLetter, err := formFile(ctx, "offerLetter")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Failed to read offer letter", err.Error(), nil))
		return
	}
	noc, err := formFile(ctx, "noc")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Failed to read NOC", err.Error(), nil))
		return
	}

	app, err := h.appService.Create(ctx.Request.Context(), actorFromContext(ctx), service.CreateApplicationInput{
		CompanyName:      form.CompanyName,
		InternshipDomain: form.InternshipDomain,
		InternshipMode:   form.InternshipMode,
		StartDate:        startDate,
		EndDate:          endDate,
		OfferLetter:      offerLetter,
		Noc:              noc,
	})
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Application submitted", app))
}

func (h *ApplicationHandler) List(ctx *gin.Context) {
	apps, err := h.appService.List(ctx.Request.Context(), actorFromContext(ctx))
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Applications fetched", apps))
}

func (h *ApplicationHandler) Get(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	app, err := h.appService.Get(ctx.Request.Context(), actorFromContext(ctx), id)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Application fetched", app))
}

func (h *ApplicationHandler) Review(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
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

	if err := h.appService.Review(ctx.Request.Context(), actorFromContext(ctx), id, input.Decision, input.Remarks); err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Application reviewed", nil))
}
