package service

import (
	"context"
	"strings"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/google/uuid"
)

// LogService implements the weekly log workflow: student submission
// against an approved application, one-way faculty review.
type LogService interface {
	Submit(ctx context.Context, actor Actor, applicationID uuid.UUID, weekNumber int, description string, file *FileUpload) (*model.WeeklyLog, error)
	Review(ctx context.Context, actor Actor, logID uuid.UUID, feedback string) error
	List(ctx context.Context, actor Actor, applicationID uuid.UUID) ([]model.WeeklyLog, error)
}

type logService struct {
	logRepo  repository.WeeklyLogRepository
	appRepo  repository.ApplicationRepository
	fileRepo repository.FileRepository
}

func NewLogService(
	logRepo repository.WeeklyLogRepository,
	appRepo repository.ApplicationRepository,
	fileRepo repository.FileRepository,
) LogService {
	return &logService{
		logRepo:  logRepo,
		appRepo:  appRepo,
		fileRepo: fileRepo,
	}
}

func (s *logService) Submit(ctx context.Context, actor Actor, applicationID uuid.UUID, weekNumber int, description string, file *FileUpload) (*model.WeeklyLog, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}
	if !actor.IsStudent() || app.StudentID != actor.ID {
		return nil, utils.NewPermissionDenied("only the owning student can submit weekly logs")
	}
	if app.Status != model.StatusApproved {
		return nil, utils.NewValidationError("weekly logs can only be submitted for approved applications")
	}
	if weekNumber < 1 {
		return nil, utils.NewValidationError("week number must be a positive integer")
	}
	if file == nil || len(file.Data) == 0 {
		return nil, utils.NewValidationError("file upload is mandatory for weekly logs")
	}

	exists, err := s.logRepo.WeekExists(applicationID, weekNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewValidationError("a log for this week has already been submitted")
	}

	fileID, err := s.fileRepo.Save(ctx, &model.StoredFile{
		OwnerID:     actor.ID,
		Department:  actor.Department,
		Kind:        model.FileWeeklySubmission,
		FileName:    file.Name,
		ContentType: file.ContentType,
		Data:        file.Data,
		UploadedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	entry := &model.WeeklyLog{
		StudentID:          actor.ID,
		ApplicationID:      applicationID,
		WeekNumber:         weekNumber,
		SubmissionFileID:   fileID,
		SubmissionFileName: file.Name,
		SubmissionFileType: file.ContentType,
		ReviewStatus:       model.ReviewPending,
	}
	if description != "" {
		entry.Description = &description
	}

	if err := s.logRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *logService) Review(ctx context.Context, actor Actor, logID uuid.UUID, feedback string) error {
	entry, err := s.logRepo.FindByID(logID)
	if err != nil {
		return notFoundOr(err, "weekly log not found")
	}
	app, err := s.appRepo.FindByID(entry.ApplicationID)
	if err != nil {
		return notFoundOr(err, "application not found")
	}

	if !actor.IsFaculty() || app.AssignedFacultyID == nil || *app.AssignedFacultyID != actor.ID {
		return utils.NewPermissionDenied("only the assigned faculty can review this log")
	}
	if strings.TrimSpace(feedback) == "" {
		return utils.NewValidationError("feedback is required")
	}

	return s.logRepo.MarkReviewed(logID, feedback, actor.ID, time.Now())
}

func (s *logService) List(ctx context.Context, actor Actor, applicationID uuid.UUID) ([]model.WeeklyLog, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}
	if err := canViewApplication(actor, app); err != nil {
		return nil, err
	}
	return s.logRepo.FindByApplication(applicationID)
}
