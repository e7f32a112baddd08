package routes

import (
	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine, s service.AdminService) {
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin))
	{
		admin.GET("/users", s.GetAllUsers)
		admin.GET("/users/:id", s.GetUserDetail)
		admin.POST("/users", s.CreateUser)
	}
}
