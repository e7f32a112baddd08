package main

import (
	"log"
	"os"

	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/database"
	"github.com/rakesh-s-omen/SmartIntern/routes"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {

	// =================================================================
	// LOAD ENV
	// =================================================================
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found, using environment defaults")
	}

	// =================================================================
	// CUSTOM VALIDATORS
	// =================================================================
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("regno", utils.RegnoValidator); err != nil {
			log.Fatalf("❌ Failed to register regno validator: %v", err)
		}
	}

	// =================================================================
	// INIT DB (POSTGRES + MONGODB + REDIS)
	// =================================================================
	dbConn, err := database.InitDB()
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}

	// =================================================================
	// SEED DATA (ADMIN + FACULTY + SAMPLE STUDENTS)
	// =================================================================
	database.RunSeeders(dbConn.Postgres)

	// =================================================================
	// REPOSITORIES
	// =================================================================
	userRepo := repository.NewUserRepository(dbConn.Postgres)
	appRepo := repository.NewApplicationRepository(dbConn.Postgres)
	logRepo := repository.NewWeeklyLogRepository(dbConn.Postgres)
	proofRepo := repository.NewProgressProofRepository(dbConn.Postgres)
	completionRepo := repository.NewCompletionRepository(dbConn.Postgres)
	fileRepo := repository.NewFileRepository(dbConn.Mongo)
	otpRepo := repository.NewOTPRepository(dbConn.Redis)
	reportRepo := repository.NewReportRepository(dbConn.Postgres)

	// =================================================================
	// SERVICES
	// =================================================================
	authService := service.NewAuthService(userRepo, otpRepo)
	appService := service.NewApplicationService(appRepo, userRepo, fileRepo)
	logService := service.NewLogService(logRepo, appRepo, fileRepo)
	proofService := service.NewProofService(proofRepo, appRepo, userRepo, fileRepo)
	completionService := service.NewCompletionService(completionRepo, appRepo, logRepo, fileRepo)
	fileService := service.NewFileService(fileRepo)
	dashboardService := service.NewDashboardService(appRepo, logRepo, completionRepo, userRepo, reportRepo)
	reportService := service.NewReportService(reportRepo, completionRepo)
	adminService := service.NewAdminService(userRepo)

	// =================================================================
	// ROUTER
	// =================================================================
	r := gin.Default()

	routes.NewAuthHandler(authService).SetupAuthRoutes(r)
	routes.NewApplicationHandler(appService).SetupApplicationRoutes(r)
	routes.NewLogHandler(logService).SetupLogRoutes(r)
	routes.NewProofHandler(proofService).SetupProofRoutes(r)
	routes.NewCompletionHandler(completionService).SetupCompletionRoutes(r)
	routes.NewFileHandler(fileService).SetupFileRoutes(r)
	routes.NewDashboardHandler(dashboardService).SetupDashboardRoutes(r)
	routes.ReportRoutes(r, reportService)
	routes.AdminRoutes(r, adminService)

	// Root endpoint (optional)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "SmartIntern API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at http://localhost:" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
