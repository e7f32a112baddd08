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

// Review decisions accepted by the application workflow.
const (
	DecisionApprove       = "approve"
	DecisionRejectFaculty = "reject_faculty"
	DecisionRejectCompany = "reject_company"
)

var decisionToStatus = map[string]string{
	DecisionApprove:       model.StatusApproved,
	DecisionRejectFaculty: model.StatusRejectedFaculty,
	DecisionRejectCompany: model.StatusRejectedCompany,
}

var validModes = map[string]bool{
	"online":  true,
	"offline": true,
	"hybrid":  true,
}

// CreateApplicationInput is a student's internship application form.
type CreateApplicationInput struct {
	CompanyName      string
	InternshipDomain string
	InternshipMode   string
	StartDate        time.Time
	EndDate          time.Time
	OfferLetter      *FileUpload
	Noc              *FileUpload
}

// ApplicationService implements the internship application lifecycle:
// creation with faculty auto-assignment, and faculty review.
type ApplicationService interface {
	Create(ctx context.Context, actor Actor, input CreateApplicationInput) (*model.InternshipApplication, error)
	Review(ctx context.Context, actor Actor, applicationID uuid.UUID, decision, remarks string) error
	Get(ctx context.Context, actor Actor, applicationID uuid.UUID) (*model.InternshipApplication, error)
	List(ctx context.Context, actor Actor) ([]model.InternshipApplication, error)
}

type applicationService struct {
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	fileRepo repository.FileRepository
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	fileRepo repository.FileRepository,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		userRepo: userRepo,
		fileRepo: fileRepo,
	}
}

// pickLeastLoaded returns the faculty with the fewest assigned
// applications. Loads arrive ordered by name, so ties break on that
// stable order.
func pickLeastLoaded(loads []repository.FacultyLoad) *model.UserProfile {
	var best *repository.FacultyLoad
	for i := range loads {
		if best == nil || loads[i].Assigned < best.Assigned {
			best = &loads[i]
		}
	}
	if best == nil {
		return nil
	}
	return &best.Faculty
}

// assignFaculty selects the least-loaded faculty in the student's
// department, falling back to any faculty when the department has none.
func (s *applicationService) assignFaculty(department string) (*model.UserProfile, error) {
	loads, err := s.userRepo.FacultyLoads(department)
	if err != nil {
		return nil, err
	}
	if faculty := pickLeastLoaded(loads); faculty != nil {
		return faculty, nil
	}

	loads, err = s.userRepo.FacultyLoads("")
	if err != nil {
		return nil, err
	}
	return pickLeastLoaded(loads), nil
}

func (s *applicationService) Create(ctx context.Context, actor Actor, input CreateApplicationInput) (*model.InternshipApplication, error) {
	if !actor.IsStudent() {
		return nil, utils.NewPermissionDenied("only students can apply for internships")
	}
	if strings.TrimSpace(input.CompanyName) == "" || strings.TrimSpace(input.InternshipDomain) == "" {
		return nil, utils.NewValidationError("company name and internship domain are required")
	}
	if !validModes[input.InternshipMode] {
		return nil, utils.NewValidationError("internship mode must be online, offline or hybrid")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, utils.NewValidationError("end date must be after start date")
	}

	app := &model.InternshipApplication{
		StudentID:        actor.ID,
		CompanyName:      input.CompanyName,
		InternshipDomain: input.InternshipDomain,
		InternshipMode:   input.InternshipMode,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Status:           model.StatusPendingFaculty,
	}

	if input.OfferLetter != nil {
		id, err := s.storeFile(ctx, actor, model.FileOfferLetter, input.OfferLetter)
		if err != nil {
			return nil, err
		}
		app.OfferLetterFileID = &id
		app.OfferLetterName = &input.OfferLetter.Name
	}
	if input.Noc != nil {
		id, err := s.storeFile(ctx, actor, model.FileNoc, input.Noc)
		if err != nil {
			return nil, err
		}
		app.NocFileID = &id
		app.NocFileName = &input.Noc.Name
	}

	faculty, err := s.assignFaculty(actor.Department)
	if err != nil {
		return nil, err
	}
	if faculty != nil {
		app.AssignedFacultyID = &faculty.ID
		app.AssignedFaculty = faculty
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) storeFile(ctx context.Context, actor Actor, kind string, upload *FileUpload) (string, error) {
	return s.fileRepo.Save(ctx, &model.StoredFile{
		OwnerID:     actor.ID,
		Department:  actor.Department,
		Kind:        kind,
		FileName:    upload.Name,
		ContentType: upload.ContentType,
		Data:        upload.Data,
		UploadedAt:  time.Now(),
	})
}

func (s *applicationService) Review(ctx context.Context, actor Actor, applicationID uuid.UUID, decision, remarks string) error {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return notFoundOr(err, "application not found")
	}

	if !actor.IsAdmin() {
		if !actor.IsFaculty() || app.AssignedFacultyID == nil || *app.AssignedFacultyID != actor.ID {
			return utils.NewPermissionDenied("only the assigned faculty can review this application")
		}
	}

	status, ok := decisionToStatus[decision]
	if !ok {
		return utils.NewValidationError("decision must be approve, reject_faculty or reject_company")
	}
	if strings.TrimSpace(remarks) == "" {
		return utils.NewValidationError("remarks are required")
	}

	update := repository.ReviewUpdate{
		Status:     status,
		Remarks:    remarks,
		ReviewerID: actor.ID,
	}
	if status == model.StatusApproved {
		now := time.Now()
		update.ApprovalDate = &now
	}
	return s.appRepo.UpdateReview(applicationID, update)
}

func (s *applicationService) Get(ctx context.Context, actor Actor, applicationID uuid.UUID) (*model.InternshipApplication, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, notFoundOr(err, "application not found")
	}
	if err := canViewApplication(actor, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, actor Actor) ([]model.InternshipApplication, error) {
	switch {
	case actor.IsStudent():
		return s.appRepo.FindByStudent(actor.ID)
	case actor.IsFaculty():
		return s.appRepo.FindByAssignedFaculty(actor.ID)
	case actor.IsAdmin():
		return s.appRepo.FindAll()
	}
	return nil, utils.NewPermissionDenied("unknown role")
}

// canViewApplication enforces the shared visibility rule: owner student,
// assigned faculty, or admin.
func canViewApplication(actor Actor, app *model.InternshipApplication) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsStudent() && app.StudentID == actor.ID:
		return nil
	case actor.IsFaculty() && app.AssignedFacultyID != nil && *app.AssignedFacultyID == actor.ID:
		return nil
	}
	return utils.NewPermissionDenied("you do not have access to this application")
}
