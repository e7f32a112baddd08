package repository

import (
	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"gorm.io/gorm"
)

// CountRow is a label/count pair used by the analytics endpoints and the
// tabular exports.
type CountRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// FacultyOverviewRow summarizes one faculty member's workload.
type FacultyOverviewRow struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Department     string `json:"department"`
	AssignedCount  int64  `json:"assignedCount"`
	ApprovedCount  int64  `json:"approvedCount"`
	PendingCount   int64  `json:"pendingCount"`
	PendingReviews int64  `json:"pendingReviews"`
}

// StudentOverviewRow summarizes one student's internship status.
type StudentOverviewRow struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	RegisterNumber string `json:"registerNumber"`
	Department     string `json:"department"`
	AppCount       int64  `json:"applicationCount"`
	ApprovedCount  int64  `json:"approvedCount"`
	CompletedCount int64  `json:"completedCount"`
}

// ReportRepository runs the read-only aggregate queries behind analytics
// and exports. Pure derived views, no state mutation.
type ReportRepository interface {
	CountByDomain() ([]CountRow, error)
	TopCompanies(limit int) ([]CountRow, error)
	TotalApplications() (int64, error)
	ApprovedApplications() (int64, error)
	FacultyOverview() ([]FacultyOverviewRow, error)
	StudentOverview() ([]StudentOverviewRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

func (r *reportRepository) CountByDomain() ([]CountRow, error) {
	var rows []CountRow
	err := r.db.Model(&model.InternshipApplication{}).
		Select("internship_domain AS label, COUNT(*) AS count").
		Group("internship_domain").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopCompanies(limit int) ([]CountRow, error) {
	var rows []CountRow
	err := r.db.Model(&model.InternshipApplication{}).
		Select("company_name AS label, COUNT(*) AS count").
		Group("company_name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TotalApplications() (int64, error) {
	var count int64
	err := r.db.Model(&model.InternshipApplication{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) ApprovedApplications() (int64, error) {
	var count int64
	err := r.db.Model(&model.InternshipApplication{}).
		Where("status = ?", model.StatusApproved).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) FacultyOverview() ([]FacultyOverviewRow, error) {
	var rows []FacultyOverviewRow
	err := r.db.Raw(`
		SELECT u.id::text AS id,
		       u.full_name,
		       u.department,
		       COUNT(a.id) AS assigned_count,
		       COUNT(a.id) FILTER (WHERE a.status = 'approved') AS approved_count,
		       COUNT(a.id) FILTER (WHERE a.status IN ('pending_faculty','pending_company')) AS pending_count,
		       (SELECT COUNT(*) FROM weekly_logs l
		          JOIN internship_applications la ON la.id = l.application_id
		         WHERE la.assigned_faculty_id = u.id AND l.review_status = 'pending') AS pending_reviews
		FROM user_profiles u
		LEFT JOIN internship_applications a ON a.assigned_faculty_id = u.id
		WHERE u.role = 'faculty'
		GROUP BY u.id, u.full_name, u.department
		ORDER BY assigned_count DESC, u.full_name ASC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) StudentOverview() ([]StudentOverviewRow, error) {
	var rows []StudentOverviewRow
	err := r.db.Raw(`
		SELECT u.id::text AS id,
		       u.full_name,
		       COALESCE(u.register_number, '') AS register_number,
		       u.department,
		       COUNT(a.id) AS app_count,
		       COUNT(a.id) FILTER (WHERE a.status = 'approved') AS approved_count,
		       COUNT(c.id) FILTER (WHERE c.completion_status) AS completed_count
		FROM user_profiles u
		LEFT JOIN internship_applications a ON a.student_id = u.id
		LEFT JOIN internship_completions c ON c.application_id = a.id
		WHERE u.role = 'student'
		GROUP BY u.id, u.full_name, u.register_number, u.department
		ORDER BY u.full_name ASC
	`).Scan(&rows).Error
	return rows, err
}
