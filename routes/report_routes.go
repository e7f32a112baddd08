package routes

import (
	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"

	"github.com/gin-gonic/gin"
)

// ReportRoutes registers the analytics endpoints. Analytics and export are
// for faculty and admin; the overview tables are admin only.
func ReportRoutes(r *gin.Engine, s service.ReportService) {
	g := r.Group("/api/v1/reports")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/analytics", middleware.RequireRoles(model.RoleFaculty, model.RoleAdmin), s.GetAnalytics)
		g.GET("/export", middleware.RequireRoles(model.RoleFaculty, model.RoleAdmin), s.Export)
		g.GET("/faculty", middleware.RequireRoles(model.RoleAdmin), s.GetFacultyOverview)
		g.GET("/students", middleware.RequireRoles(model.RoleAdmin), s.GetStudentOverview)
	}
}
