package service

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// ReportService serves the read-only analytics endpoints. Methods handle
// the request directly; routing only maps URLs here. Role restriction to
// faculty/admin happens in middleware.
type ReportService interface {
	GetAnalytics(ctx *gin.Context)
	Export(ctx *gin.Context)
	GetFacultyOverview(ctx *gin.Context)
	GetStudentOverview(ctx *gin.Context)
}

type reportService struct {
	reportRepo     repository.ReportRepository
	completionRepo repository.CompletionRepository
}

func NewReportService(reportRepo repository.ReportRepository, completionRepo repository.CompletionRepository) ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		completionRepo: completionRepo,
	}
}

type analyticsData struct {
	ByDomain             []repository.CountRow `json:"byDomain"`
	TopCompanies         []repository.CountRow `json:"topCompanies"`
	TotalApplications    int64                 `json:"totalApplications"`
	ApprovedApplications int64                 `json:"approvedApplications"`
	CompletedCount       int64                 `json:"completedCount"`
	CompletionPercentage float64               `json:"completionPercentage"`
}

func (s *reportService) collectAnalytics() (*analyticsData, error) {
	byDomain, err := s.reportRepo.CountByDomain()
	if err != nil {
		return nil, err
	}
	topCompanies, err := s.reportRepo.TopCompanies(10)
	if err != nil {
		return nil, err
	}
	total, err := s.reportRepo.TotalApplications()
	if err != nil {
		return nil, err
	}
	approved, err := s.reportRepo.ApprovedApplications()
	if err != nil {
		return nil, err
	}
	completed, err := s.completionRepo.CountCompleted()
	if err != nil {
		return nil, err
	}

	pct := 0.0
	if approved > 0 {
		pct = float64(completed) / float64(approved) * 100
	}

	return &analyticsData{
		ByDomain:             byDomain,
		TopCompanies:         topCompanies,
		TotalApplications:    total,
		ApprovedApplications: approved,
		CompletedCount:       completed,
		CompletionPercentage: pct,
	}, nil
}

// GET /api/v1/reports/analytics
func (s *reportService) GetAnalytics(ctx *gin.Context) {
	data, err := s.collectAnalytics()
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Analytics generated", data))
}

// GET /api/v1/reports/export?format=csv|json
// Tabular export of the domain and company aggregates in two formats.
func (s *reportService) Export(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", "json")
	if format != "csv" && format != "json" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Unsupported export format", "format must be csv or json", nil))
		return
	}

	data, err := s.collectAnalytics()
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	if format == "json" {
		ctx.Header("Content-Disposition", `attachment; filename="internship_report.json"`)
		ctx.JSON(http.StatusOK, data)
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="internship_report.csv"`)

	w := csv.NewWriter(ctx.Writer)
	_ = w.Write([]string{"section", "label", "count"})
	for _, row := range data.ByDomain {
		_ = w.Write([]string{"domain", row.Label, strconv.FormatInt(row.Count, 10)})
	}
	for _, row := range data.TopCompanies {
		_ = w.Write([]string{"company", row.Label, strconv.FormatInt(row.Count, 10)})
	}
	_ = w.Write([]string{"summary", "total_applications", strconv.FormatInt(data.TotalApplications, 10)})
	_ = w.Write([]string{"summary", "approved_applications", strconv.FormatInt(data.ApprovedApplications, 10)})
	_ = w.Write([]string{"summary", "completed", strconv.FormatInt(data.CompletedCount, 10)})
	w.Flush()
}

// GET /api/v1/reports/faculty — admin-only workload table.
func (s *reportService) GetFacultyOverview(ctx *gin.Context) {
	rows, err := s.reportRepo.FacultyOverview()
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Faculty overview generated", rows))
}

// GET /api/v1/reports/students — admin-only status table.
func (s *reportService) GetStudentOverview(ctx *gin.Context) {
	rows, err := s.reportRepo.StudentOverview()
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Student overview generated", rows))
}
