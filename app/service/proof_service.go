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

var validProofTypes = map[string]bool{
	model.ProofWorkSample:       true,
	model.ProofAttendance:       true,
	model.ProofProjectMilestone: true,
	model.ProofTaskCompletion:   true,
	model.ProofPresentation:     true,
	model.ProofOther:            true,
}

// SubmitProofInput is a student's supplementary evidence submission.
type SubmitProofInput struct {
	ProofType   string
	Title       string
	Description string
	File        *FileUpload
}

// ProofService implements the progress proof workflow. Unlike weekly logs
// there is no per-week uniqueness; any number of proofs per application.
type ProofService interface {
	Submit(ctx context.Context, actor Actor, applicationID uuid.UUID, input SubmitProofInput) (*model.ProgressProof, error)
	Verify(ctx context.Context, actor Actor, proofID uuid.UUID, decision, remarks string) error
	List(ctx context.Context, actor Actor, applicationID uuid.UUID) ([]model.ProgressProof, error)
}

type proofService struct {
	proofRepo repository.ProgressProofRepository
	appRepo   repository.ApplicationRepository
	userRepo  repository.UserRepository
	fileRepo  repository.FileRepository
}

func NewProofService(
	proofRepo repository.ProgressProofRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	fileRepo repository.FileRepository,
) ProofService {
	return &proofService{
		proofRepo: proofRepo,
		appRepo:   appRepo,
		userRepo:  userRepo,
		fileRepo:  fileRepo,
	}
}

func (s *proofService) Submit(ctx context.Context, actor Actor, applicationID uuid.UUID, input SubmitProofInput) (*model.ProgressProof, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}
	if !actor.IsStudent() || app.StudentID != actor.ID {
		return nil, utils.NewPermissionDenied("only the owning student can submit progress proofs")
	}
	if app.Status != model.StatusApproved {
		return nil, utils.NewValidationError("progress proofs can only be submitted for approved applications")
	}
	if !validProofTypes[input.ProofType] {
		return nil, utils.NewValidationError("invalid proof type")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, utils.NewValidationError("title is required")
	}
	if input.File == nil || len(input.File.Data) == 0 {
		return nil, utils.NewValidationError("file upload is mandatory for progress proofs")
	}

	fileID, err := s.fileRepo.Save(ctx, &model.StoredFile{
		OwnerID:     actor.ID,
		Department:  actor.Department,
		Kind:        model.FileProgressProof,
		FileName:    input.File.Name,
		ContentType: input.File.ContentType,
		Data:        input.File.Data,
		UploadedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	proof := &model.ProgressProof{
		ApplicationID:      applicationID,
		StudentID:          actor.ID,
		ProofType:          input.ProofType,
		Title:              input.Title,
		Description:        input.Description,
		ProofFileID:        fileID,
		ProofFileName:      input.File.Name,
		ProofFileType:      input.File.ContentType,
		VerificationStatus: model.VerificationPending,
	}

	if err := s.proofRepo.Create(proof); err != nil {
		return nil, err
	}
	return proof, nil
}

func (s *proofService) Verify(ctx context.Context, actor Actor, proofID uuid.UUID, decision, remarks string) error {
	proof, err := s.proofRepo.FindByID(proofID)
	if err != nil {
		return notFoundOr(err, "progress proof not found")
	}

	if !actor.IsAdmin() {
		if !actor.IsFaculty() {
			return utils.NewPermissionDenied("only faculty or admin can verify progress proofs")
		}
		student, err := s.userRepo.FindByID(proof.StudentID)
		if err != nil {
			return notFoundOr(err, "student not found")
		}
		if student.Department != actor.Department {
			return utils.NewPermissionDenied("faculty can only verify proofs from their own department")
		}
	}

	if decision != model.VerificationVerified && decision != model.VerificationRejected {
		return utils.NewValidationError("decision must be verified or rejected")
	}
	if strings.TrimSpace(remarks) == "" {
		return utils.NewValidationError("remarks are required")
	}

	return s.proofRepo.UpdateVerification(proofID, decision, remarks, actor.ID, time.Now())
}

func (s *proofService) List(ctx context.Context, actor Actor, applicationID uuid.UUID) ([]model.ProgressProof, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}

	// Proof visibility is wider than the application rule: any faculty of
	// the student's department may look.
	allowed := actor.IsAdmin() ||
		(actor.IsStudent() && app.StudentID == actor.ID)
	if !allowed && actor.IsFaculty() {
		student, err := s.userRepo.FindByID(app.StudentID)
		if err != nil {
			return nil, notFoundOr(err, "student not found")
		}
		allowed = student.Department == actor.Department
	}
	if !allowed {
		return nil, utils.NewPermissionDenied("you do not have access to these proofs")
	}

	return s.proofRepo.FindByApplication(applicationID)
}
