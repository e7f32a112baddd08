package service

import (
	"context"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"
)

// DashboardProvider is the per-role dashboard capability. One
// implementation per role replaces the old branch-on-role-string view.
type DashboardProvider interface {
	Dashboard(ctx context.Context, actor Actor) (map[string]interface{}, error)
}

// DashboardService routes an actor to their role's provider.
type DashboardService struct {
	providers map[string]DashboardProvider
}

func NewDashboardService(
	appRepo repository.ApplicationRepository,
	logRepo repository.WeeklyLogRepository,
	completionRepo repository.CompletionRepository,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
) *DashboardService {
	return &DashboardService{
		providers: map[string]DashboardProvider{
			model.RoleStudent: &studentDashboard{appRepo: appRepo, logRepo: logRepo},
			model.RoleFaculty: &facultyDashboard{appRepo: appRepo, logRepo: logRepo},
			model.RoleAdmin:   &adminDashboard{userRepo: userRepo, reportRepo: reportRepo, completionRepo: completionRepo},
		},
	}
}

func (s *DashboardService) Dashboard(ctx context.Context, actor Actor) (map[string]interface{}, error) {
	provider, ok := s.providers[actor.Role]
	if !ok {
		return nil, utils.NewPermissionDenied("unknown role")
	}
	return provider.Dashboard(ctx, actor)
}

type studentDashboard struct {
	appRepo repository.ApplicationRepository
	logRepo repository.WeeklyLogRepository
}

func (d *studentDashboard) Dashboard(ctx context.Context, actor Actor) (map[string]interface{}, error) {
	apps, err := d.appRepo.FindByStudent(actor.ID)
	if err != nil {
		return nil, err
	}

	type appProgress struct {
		Application   model.InternshipApplication `json:"application"`
		SubmittedLogs int64                       `json:"submittedLogs"`
		ReviewedLogs  int64                       `json:"reviewedLogs"`
		ExpectedWeeks int                         `json:"expectedWeeks"`
	}

	progress := make([]appProgress, 0, len(apps))
	for i := range apps {
		pending, err := d.logRepo.CountByApplicationAndStatus(apps[i].ID, model.ReviewPending)
		if err != nil {
			return nil, err
		}
		reviewed, err := d.logRepo.CountByApplicationAndStatus(apps[i].ID, model.ReviewReviewed)
		if err != nil {
			return nil, err
		}
		progress = append(progress, appProgress{
			Application:   apps[i],
			SubmittedLogs: pending + reviewed,
			ReviewedLogs:  reviewed,
			ExpectedWeeks: apps[i].ExpectedWeeks(),
		})
	}

	return map[string]interface{}{
		"role":         model.RoleStudent,
		"applications": progress,
	}, nil
}

type facultyDashboard struct {
	appRepo repository.ApplicationRepository
	logRepo repository.WeeklyLogRepository
}

func (d *facultyDashboard) Dashboard(ctx context.Context, actor Actor) (map[string]interface{}, error) {
	apps, err := d.appRepo.FindByAssignedFaculty(actor.ID)
	if err != nil {
		return nil, err
	}

	pendingReviews, err := d.logRepo.CountByFacultyAndStatus(actor.ID, model.ReviewPending)
	if err != nil {
		return nil, err
	}
	completedReviews, err := d.logRepo.CountByFacultyAndStatus(actor.ID, model.ReviewReviewed)
	if err != nil {
		return nil, err
	}

	var pendingApplications int
	for i := range apps {
		if apps[i].Status == model.StatusPendingFaculty || apps[i].Status == model.StatusPendingCompany {
			pendingApplications++
		}
	}

	return map[string]interface{}{
		"role":                 model.RoleFaculty,
		"assignedApplications": apps,
		"pendingApplications":  pendingApplications,
		"pendingLogReviews":    pendingReviews,
		"completedLogReviews":  completedReviews,
	}, nil
}

type adminDashboard struct {
	userRepo       repository.UserRepository
	reportRepo     repository.ReportRepository
	completionRepo repository.CompletionRepository
}

func (d *adminDashboard) Dashboard(ctx context.Context, actor Actor) (map[string]interface{}, error) {
	totalStudents, err := d.userRepo.CountByRole(model.RoleStudent)
	if err != nil {
		return nil, err
	}
	totalFaculty, err := d.userRepo.CountByRole(model.RoleFaculty)
	if err != nil {
		return nil, err
	}
	totalApplications, err := d.reportRepo.TotalApplications()
	if err != nil {
		return nil, err
	}
	approved, err := d.reportRepo.ApprovedApplications()
	if err != nil {
		return nil, err
	}
	completed, err := d.completionRepo.CountCompleted()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"role":              model.RoleAdmin,
		"totalStudents":     totalStudents,
		"totalFaculty":      totalFaculty,
		"totalApplications": totalApplications,
		"approvedCount":     approved,
		"completedCount":    completed,
	}, nil
}
