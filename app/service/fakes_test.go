package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.UserProfile
	// assigned overrides the computed application count per faculty.
	assigned map[uuid.UUID]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[uuid.UUID]*model.UserProfile{},
		assigned: map[uuid.UUID]int64{},
	}
}

func (r *fakeUserRepo) add(user *model.UserProfile) *model.UserProfile {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(user *model.UserProfile) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.UserProfile, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.UserProfile, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByRole(role string) ([]model.UserProfile, error) {
	var out []model.UserProfile
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) FacultyLoads(department string) ([]repository.FacultyLoad, error) {
	var loads []repository.FacultyLoad
	for _, u := range r.users {
		if u.Role != model.RoleFaculty {
			continue
		}
		if department != "" && u.Department != department {
			continue
		}
		loads = append(loads, repository.FacultyLoad{Faculty: *u, Assigned: r.assigned[u.ID]})
	}
	sort.Slice(loads, func(i, j int) bool {
		return loads[i].Faculty.FullName < loads[j].Faculty.FullName
	})
	return loads, nil
}

func (r *fakeUserRepo) UpdatePasswordHash(id uuid.UUID, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = hash
	return nil
}

type fakeAppRepo struct {
	apps map[uuid.UUID]*model.InternshipApplication
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[uuid.UUID]*model.InternshipApplication{}}
}

func (r *fakeAppRepo) add(app *model.InternshipApplication) *model.InternshipApplication {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	r.apps[app.ID] = app
	return app
}

func (r *fakeAppRepo) Create(app *model.InternshipApplication) error {
	r.add(app)
	return nil
}

func (r *fakeAppRepo) FindByID(id uuid.UUID) (*model.InternshipApplication, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (r *fakeAppRepo) FindByStudent(studentID uuid.UUID) ([]model.InternshipApplication, error) {
	var out []model.InternshipApplication
	for _, app := range r.apps {
		if app.StudentID == studentID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) FindByAssignedFaculty(facultyID uuid.UUID) ([]model.InternshipApplication, error) {
	var out []model.InternshipApplication
	for _, app := range r.apps {
		if app.AssignedFacultyID != nil && *app.AssignedFacultyID == facultyID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) FindAll() ([]model.InternshipApplication, error) {
	var out []model.InternshipApplication
	for _, app := range r.apps {
		out = append(out, *app)
	}
	return out, nil
}

func (r *fakeAppRepo) UpdateReview(id uuid.UUID, update repository.ReviewUpdate) error {
	app, ok := r.apps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	app.Status = update.Status
	app.FacultyRemarks = &update.Remarks
	app.ApprovalDate = update.ApprovalDate
	return nil
}

type fakeLogRepo struct {
	logs map[uuid.UUID]*model.WeeklyLog
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: map[uuid.UUID]*model.WeeklyLog{}}
}

func (r *fakeLogRepo) add(entry *model.WeeklyLog) *model.WeeklyLog {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.logs[entry.ID] = entry
	return entry
}

func (r *fakeLogRepo) Create(entry *model.WeeklyLog) error {
	r.add(entry)
	return nil
}

func (r *fakeLogRepo) FindByID(id uuid.UUID) (*model.WeeklyLog, error) {
	entry, ok := r.logs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (r *fakeLogRepo) FindByApplication(applicationID uuid.UUID) ([]model.WeeklyLog, error) {
	var out []model.WeeklyLog
	for _, entry := range r.logs {
		if entry.ApplicationID == applicationID {
			out = append(out, *entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekNumber < out[j].WeekNumber })
	return out, nil
}

func (r *fakeLogRepo) WeekExists(applicationID uuid.UUID, weekNumber int) (bool, error) {
	for _, entry := range r.logs {
		if entry.ApplicationID == applicationID && entry.WeekNumber == weekNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLogRepo) MarkReviewed(id uuid.UUID, feedback string, reviewerID uuid.UUID, at time.Time) error {
	entry, ok := r.logs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	entry.ReviewStatus = model.ReviewReviewed
	entry.FacultyFeedback = &feedback
	entry.ReviewedByID = &reviewerID
	entry.ReviewDate = &at
	return nil
}

func (r *fakeLogRepo) CountByApplicationAndStatus(applicationID uuid.UUID, status string) (int64, error) {
	var n int64
	for _, entry := range r.logs {
		if entry.ApplicationID == applicationID && entry.ReviewStatus == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeLogRepo) CountByFacultyAndStatus(facultyID uuid.UUID, status string) (int64, error) {
	return 0, nil
}

type fakeProofRepo struct {
	proofs map[uuid.UUID]*model.ProgressProof
}

func newFakeProofRepo() *fakeProofRepo {
	return &fakeProofRepo{proofs: map[uuid.UUID]*model.ProgressProof{}}
}

func (r *fakeProofRepo) add(proof *model.ProgressProof) *model.ProgressProof {
	if proof.ID == uuid.Nil {
		proof.ID = uuid.New()
	}
	r.proofs[proof.ID] = proof
	return proof
}

func (r *fakeProofRepo) Create(proof *model.ProgressProof) error {
	r.add(proof)
	return nil
}

func (r *fakeProofRepo) FindByID(id uuid.UUID) (*model.ProgressProof, error) {
	proof, ok := r.proofs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return proof, nil
}

func (r *fakeProofRepo) FindByApplication(applicationID uuid.UUID) ([]model.ProgressProof, error) {
	var out []model.ProgressProof
	for _, proof := range r.proofs {
		if proof.ApplicationID == applicationID {
			out = append(out, *proof)
		}
	}
	return out, nil
}

func (r *fakeProofRepo) UpdateVerification(id uuid.UUID, status, remarks string, verifierID uuid.UUID, at time.Time) error {
	proof, ok := r.proofs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	proof.VerificationStatus = status
	proof.FacultyRemarks = &remarks
	proof.VerifiedByID = &verifierID
	proof.VerificationDate = &at
	return nil
}

type fakeCompletionRepo struct {
	completions map[uuid.UUID]*model.InternshipCompletion
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{completions: map[uuid.UUID]*model.InternshipCompletion{}}
}

func (r *fakeCompletionRepo) Create(completion *model.InternshipCompletion) error {
	if completion.ID == uuid.Nil {
		completion.ID = uuid.New()
	}
	r.completions[completion.ID] = completion
	return nil
}

func (r *fakeCompletionRepo) FindByID(id uuid.UUID) (*model.InternshipCompletion, error) {
	completion, ok := r.completions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return completion, nil
}

func (r *fakeCompletionRepo) FindByApplication(applicationID uuid.UUID) (*model.InternshipCompletion, error) {
	for _, completion := range r.completions {
		if completion.ApplicationID == applicationID {
			return completion, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCompletionRepo) ExistsForApplication(applicationID uuid.UUID) (bool, error) {
	_, err := r.FindByApplication(applicationID)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeCompletionRepo) UpdateVerification(id uuid.UUID, status string, at time.Time) error {
	completion, ok := r.completions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	completion.FacultyVerificationStatus = status
	completion.VerificationDate = &at
	return nil
}

func (r *fakeCompletionRepo) CountCompleted() (int64, error) {
	var n int64
	for _, completion := range r.completions {
		if completion.CompletionStatus {
			n++
		}
	}
	return n, nil
}

type fakeFileRepo struct {
	files map[string]*model.StoredFile
	next  int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[string]*model.StoredFile{}}
}

func (r *fakeFileRepo) Save(ctx context.Context, file *model.StoredFile) (string, error) {
	r.next++
	id := fmt.Sprintf("file-%d", r.next)
	r.files[id] = file
	return id, nil
}

func (r *fakeFileRepo) FindByID(ctx context.Context, hexID string) (*model.StoredFile, error) {
	file, ok := r.files[hexID]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	return file, nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, hexID string) error {
	delete(r.files, hexID)
	return nil
}

// fakeOTPRepo mimics the Redis TTL behavior with an injectable clock.
type fakeOTPRepo struct {
	now     func() time.Time
	userID  uuid.UUID
	code    string
	expires time.Time
}

func newFakeOTPRepo(now func() time.Time) *fakeOTPRepo {
	return &fakeOTPRepo{now: now}
}

func (r *fakeOTPRepo) Issue(ctx context.Context, userID uuid.UUID, code string, ttl time.Duration) error {
	r.userID = userID
	r.code = code
	r.expires = r.now().Add(ttl)
	return nil
}

func (r *fakeOTPRepo) Consume(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	if r.code == "" || userID != r.userID || r.now().After(r.expires) {
		return false, nil
	}
	if code != r.code {
		return false, nil
	}
	r.code = ""
	return true, nil
}
