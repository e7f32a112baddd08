package service

import (
	"context"
	"testing"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProofFixture(t *testing.T) (ProofService, *fakeUserRepo, *fakeProofRepo, Actor, *model.InternshipApplication) {
	t.Helper()
	userRepo := newFakeUserRepo()
	appRepo := newFakeAppRepo()
	proofRepo := newFakeProofRepo()
	svc := NewProofService(proofRepo, appRepo, userRepo, newFakeFileRepo())

	studentUser := userRepo.add(&model.UserProfile{
		FullName:   "Rakesh S",
		Role:       model.RoleStudent,
		Department: "CSE",
	})
	student := Actor{ID: studentUser.ID, Role: model.RoleStudent, Department: "CSE"}
	app := appRepo.add(&model.InternshipApplication{
		StudentID: student.ID,
		Status:    model.StatusApproved,
	})
	return svc, userRepo, proofRepo, student, app
}

func proofInput() SubmitProofInput {
	return SubmitProofInput{
		ProofType: model.ProofWorkSample,
		Title:     "Sprint 1 dashboard",
		File:      &FileUpload{Name: "dashboard.png", ContentType: "image/png", Data: []byte("png")},
	}
}

func TestProofSubmit(t *testing.T) {
	svc, _, _, student, app := newProofFixture(t)

	proof, err := svc.Submit(context.Background(), student, app.ID, proofInput())
	require.NoError(t, err)
	assert.Equal(t, model.VerificationPending, proof.VerificationStatus)
	assert.NotEmpty(t, proof.ProofFileID)
}

func TestProofSubmitValidation(t *testing.T) {
	svc, _, _, student, app := newProofFixture(t)

	t.Run("invalid type", func(t *testing.T) {
		input := proofInput()
		input.ProofType = "screenshot"
		_, err := svc.Submit(context.Background(), student, app.ID, input)
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("missing title", func(t *testing.T) {
		input := proofInput()
		input.Title = " "
		_, err := svc.Submit(context.Background(), student, app.ID, input)
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("missing file", func(t *testing.T) {
		input := proofInput()
		input.File = nil
		_, err := svc.Submit(context.Background(), student, app.ID, input)
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})
}

func TestProofVerifyDepartmentRule(t *testing.T) {
	svc, _, proofRepo, student, app := newProofFixture(t)

	proof, err := svc.Submit(context.Background(), student, app.ID, proofInput())
	require.NoError(t, err)

	t.Run("cross-department faculty denied", func(t *testing.T) {
		outsider := Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "BBA"}
		err := svc.Verify(context.Background(), outsider, proof.ID, model.VerificationVerified, "checked")
		assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
	})

	t.Run("remarks mandatory", func(t *testing.T) {
		faculty := Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "CSE"}
		err := svc.Verify(context.Background(), faculty, proof.ID, model.VerificationVerified, " ")
		assert.True(t, utils.IsCode(err, utils.CodeValidation))
	})

	t.Run("same-department faculty allowed", func(t *testing.T) {
		faculty := Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "CSE"}
		err := svc.Verify(context.Background(), faculty, proof.ID, model.VerificationRejected, "image is unreadable")
		require.NoError(t, err)

		stored, err := proofRepo.FindByID(proof.ID)
		require.NoError(t, err)
		assert.Equal(t, model.VerificationRejected, stored.VerificationStatus)
	})

	t.Run("admin allowed regardless of department", func(t *testing.T) {
		admin := Actor{ID: uuid.New(), Role: model.RoleAdmin}
		err := svc.Verify(context.Background(), admin, proof.ID, model.VerificationVerified, "override after re-check")
		require.NoError(t, err)
	})
}

func TestProofListVisibility(t *testing.T) {
	svc, _, _, student, app := newProofFixture(t)

	_, err := svc.Submit(context.Background(), student, app.ID, proofInput())
	require.NoError(t, err)

	sameDept := Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "CSE"}
	proofs, err := svc.List(context.Background(), sameDept, app.ID)
	require.NoError(t, err)
	assert.Len(t, proofs, 1)

	otherDept := Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "BBA"}
	_, err = svc.List(context.Background(), otherDept, app.ID)
	assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
}
