package service

import (
	"context"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/google/uuid"
)

// CalculateCompletionScore derives the heuristic completion score:
//
//	duration_score = min(totalDuration/90 * 40, 40)
//	log_score      = min(reviewedLogs * 3, 40)
//	penalty        = missedLogs * 5
//	score          = clamp(duration_score + log_score - penalty, 0, 100)
//
// With no reviewed logs the score is 0 regardless of duration.
func CalculateCompletionScore(totalDuration, reviewedLogs, missedLogs int) float64 {
	if reviewedLogs == 0 {
		return 0
	}

	durationScore := float64(totalDuration) / 90 * 40
	if durationScore > 40 {
		durationScore = 40
	}

	logScore := float64(reviewedLogs * 3)
	if logScore > 40 {
		logScore = 40
	}

	penalty := float64(missedLogs * 5)

	score := durationScore + logScore - penalty
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CompletionService closes out an internship: certificate submission with
// a derived score, and independent faculty verification.
type CompletionService interface {
	Submit(ctx context.Context, actor Actor, applicationID uuid.UUID, certificate *FileUpload) (*model.InternshipCompletion, error)
	Verify(ctx context.Context, actor Actor, completionID uuid.UUID, decision string) error
	Get(ctx context.Context, actor Actor, applicationID uuid.UUID) (*model.InternshipCompletion, error)
}

type completionService struct {
	completionRepo repository.CompletionRepository
	appRepo        repository.ApplicationRepository
	logRepo        repository.WeeklyLogRepository
	fileRepo       repository.FileRepository
}

func NewCompletionService(
	completionRepo repository.CompletionRepository,
	appRepo repository.ApplicationRepository,
	logRepo repository.WeeklyLogRepository,
	fileRepo repository.FileRepository,
) CompletionService {
	return &completionService{
		completionRepo: completionRepo,
		appRepo:        appRepo,
		logRepo:        logRepo,
		fileRepo:       fileRepo,
	}
}

func (s *completionService) Submit(ctx context.Context, actor Actor, applicationID uuid.UUID, certificate *FileUpload) (*model.InternshipCompletion, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}
	if !actor.IsStudent() || app.StudentID != actor.ID {
		return nil, utils.NewPermissionDenied("only the owning student can submit a completion")
	}
	if app.Status != model.StatusApproved {
		return nil, utils.NewValidationError("completion can only be submitted for approved applications")
	}
	if certificate == nil || len(certificate.Data) == 0 {
		return nil, utils.NewValidationError("completion certificate is required")
	}

	exists, err := s.completionRepo.ExistsForApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewValidationError("completion has already been submitted for this application")
	}

	totalDuration := int(app.EndDate.Sub(app.StartDate).Hours() / 24)

	reviewed, err := s.logRepo.CountByApplicationAndStatus(applicationID, model.ReviewReviewed)
	if err != nil {
		return nil, err
	}
	pending, err := s.logRepo.CountByApplicationAndStatus(applicationID, model.ReviewPending)
	if err != nil {
		return nil, err
	}

	// Weeks with no submission at all count as missed.
	missed := app.ExpectedWeeks() - int(reviewed+pending)
	if missed < 0 {
		missed = 0
	}

	score := CalculateCompletionScore(totalDuration, int(reviewed), missed)

	fileID, err := s.fileRepo.Save(ctx, &model.StoredFile{
		OwnerID:     actor.ID,
		Department:  actor.Department,
		Kind:        model.FileCertificate,
		FileName:    certificate.Name,
		ContentType: certificate.ContentType,
		Data:        certificate.Data,
		UploadedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	completion := &model.InternshipCompletion{
		StudentID:                 actor.ID,
		ApplicationID:             applicationID,
		TotalDuration:             totalDuration,
		CertificateFileID:         fileID,
		CertificateFileName:       certificate.Name,
		CompletionStatus:          true,
		FacultyVerificationStatus: model.VerificationPending,
		CompletionScore:           &score,
	}

	if err := s.completionRepo.Create(completion); err != nil {
		return nil, err
	}
	return completion, nil
}

func (s *completionService) Verify(ctx context.Context, actor Actor, completionID uuid.UUID, decision string) error {
	completion, err := s.completionRepo.FindByID(completionID)
	if err != nil {
		return notFoundOr(err, "completion not found")
	}
	app, err := s.appRepo.FindByID(completion.ApplicationID)
	if err != nil {
		return notFoundOr(err, "application not found")
	}

	if !actor.IsAdmin() {
		if !actor.IsFaculty() || app.AssignedFacultyID == nil || *app.AssignedFacultyID != actor.ID {
			return utils.NewPermissionDenied("only the assigned faculty can verify this completion")
		}
	}
	if decision != model.VerificationVerified && decision != model.VerificationRejected {
		return utils.NewValidationError("decision must be verified or rejected")
	}

	return s.completionRepo.UpdateVerification(completionID, decision, time.Now())
}

func (s *completionService) Get(ctx context.Context, actor Actor, applicationID uuid.UUID) (*model.InternshipCompletion, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}
	if err := canViewApplication(actor, app); err != nil {
		return nil, err
	}
	completion, err := s.completionRepo.FindByApplication(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "completion not found")
	}
	return completion, nil
}
