package service

import (
	"context"
	"testing"
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogFixture(t *testing.T) (LogService, *fakeAppRepo, *fakeLogRepo, Actor, *model.InternshipApplication) {
	t.Helper()
	appRepo := newFakeAppRepo()
	logRepo := newFakeLogRepo()
	svc := NewLogService(logRepo, appRepo, newFakeFileRepo())

	student := Actor{ID: uuid.New(), Role: model.RoleStudent, Department: "CSE"}
	assigned := uuid.New()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	app := appRepo.add(&model.InternshipApplication{
		StudentID:         student.ID,
		AssignedFacultyID: &assigned,
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, 90),
		Status:            model.StatusApproved,
	})
	return svc, appRepo, logRepo, student, app
}

func logFile() *FileUpload {
	return &FileUpload{Name: "week1.pdf", ContentType: "application/pdf", Data: []byte("pdf")}
}

func TestLogSubmit(t *testing.T) {
	svc, _, logRepo, student, app := newLogFixture(t)

	entry, err := svc.Submit(context.Background(), student, app.ID, 1, "built the login page", logFile())
	require.NoError(t, err)

	assert.Equal(t, model.ReviewPending, entry.ReviewStatus)
	assert.NotEmpty(t, entry.SubmissionFileID)

	stored, err := logRepo.FindByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.WeekNumber)
}

func TestLogSubmitRejectsDuplicateWeek(t *testing.T) {
	svc, _, _, student, app := newLogFixture(t)

	_, err := svc.Submit(context.Background(), student, app.ID, 3, "", logFile())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), student, app.ID, 3, "", logFile())
	assert.True(t, utils.IsCode(err, utils.CodeValidation))
}

func TestLogSubmitRequiresFile(t *testing.T) {
	svc, _, _, student, app := newLogFixture(t)

	_, err := svc.Submit(context.Background(), student, app.ID, 1, "no attachment", nil)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	_, err = svc.Submit(context.Background(), student, app.ID, 1, "empty attachment", &FileUpload{Name: "x"})
	assert.True(t, utils.IsCode(err, utils.CodeValidation))
}

func TestLogSubmitRequiresApprovedApplication(t *testing.T) {
	svc, appRepo, _, student, app := newLogFixture(t)
	app.Status = model.StatusPendingFaculty
	appRepo.apps[app.ID] = app

	_, err := svc.Submit(context.Background(), student, app.ID, 1, "", logFile())
	assert.True(t, utils.IsCode(err, utils.CodeValidation))
}

func TestLogSubmitRejectsNonOwner(t *testing.T) {
	svc, _, _, _, app := newLogFixture(t)
	other := Actor{ID: uuid.New(), Role: model.RoleStudent, Department: "CSE"}

	_, err := svc.Submit(context.Background(), other, app.ID, 1, "", logFile())
	assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
}

func TestLogSubmitRejectsNonPositiveWeek(t *testing.T) {
	svc, _, _, student, app := newLogFixture(t)

	_, err := svc.Submit(context.Background(), student, app.ID, 0, "", logFile())
	assert.True(t, utils.IsCode(err, utils.CodeValidation))
}

func TestLogReview(t *testing.T) {
	svc, _, logRepo, student, app := newLogFixture(t)

	entry, err := svc.Submit(context.Background(), student, app.ID, 1, "", logFile())
	require.NoError(t, err)

	faculty := Actor{ID: *app.AssignedFacultyID, Role: model.RoleFaculty, Department: "CSE"}

	t.Run("non-assigned faculty denied", func(t *testing.T) {
		other := Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "CSE"}
		err := svc.Review(context.Background(), other, entry.ID, "looks good")
		assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
	})

	t.Run("feedback mandatory", func(t *testing.T) {
		err := svc.Review(context.Background(), faculty, entry.ID, "  ")
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("assigned faculty marks reviewed", func(t *testing.T) {
		err := svc.Review(context.Background(), faculty, entry.ID, "good progress this week")
		require.NoError(t, err)

		stored, err := logRepo.FindByID(entry.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ReviewReviewed, stored.ReviewStatus)
		require.NotNil(t, stored.FacultyFeedback)
		assert.Equal(t, "good progress this week", *stored.FacultyFeedback)
		assert.NotNil(t, stored.ReviewDate)
	})
}
