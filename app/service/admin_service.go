package service

import (
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles user management. Students self-register; faculty
// and admin accounts are created here with assigned usernames. Role
// restriction to admin happens in middleware.
type AdminService interface {
	CreateUser(ctx *gin.Context)
	GetAllUsers(ctx *gin.Context)
	GetUserDetail(ctx *gin.Context)
}

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// POST /api/v1/admin/users
func (s *adminService) CreateUser(ctx *gin.Context) {
	var input struct {
		Username     string `json:"username" binding:"required"`
		Password     string `json:"password" binding:"required,min=6"`
		FullName     string `json:"fullName" binding:"required"`
		Role         string `json:"role" binding:"required,oneof=faculty admin"`
		Department   string `json:"department" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		MobileNumber string `json:"mobileNumber"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	user := model.UserProfile{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         input.Role,
		Department:   input.Department,
		Email:        input.Email,
		MobileNumber: input.MobileNumber,
		IsActive:     true,
	}

	if err := s.userRepo.Create(&user); err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Failed to create user", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("User created", user))
}

// GET /api/v1/admin/users?role=student|faculty|admin
func (s *adminService) GetAllUsers(ctx *gin.Context) {
	role := ctx.DefaultQuery("role", model.RoleStudent)
	if role != model.RoleStudent && role != model.RoleFaculty && role != model.RoleAdmin {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid role filter", "role must be student, faculty or admin", nil))
		return
	}

	users, err := s.userRepo.FindByRole(role)
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Users fetched", users))
}

// GET /api/v1/admin/users/:id
func (s *adminService) GetUserDetail(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid user id", err.Error(), nil))
		return
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User not found", "not_found", nil))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("User fetched", user))
}
