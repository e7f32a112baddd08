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

func TestFileServeACL(t *testing.T) {
	ctx := context.Background()
	fileRepo := newFakeFileRepo()
	svc := NewFileService(fileRepo)

	ownerID := uuid.New()
	fileID, err := fileRepo.Save(ctx, &model.StoredFile{
		OwnerID:     ownerID,
		Department:  "CSE",
		Kind:        model.FileWeeklySubmission,
		FileName:    "week1.pdf",
		ContentType: "application/pdf",
		Data:        []byte("pdf"),
		UploadedAt:  time.Now(),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		actor   Actor
		allowed bool
	}{
		{"admin", Actor{ID: uuid.New(), Role: model.RoleAdmin}, true},
		{"owning student", Actor{ID: ownerID, Role: model.RoleStudent, Department: "CSE"}, true},
		{"other student", Actor{ID: uuid.New(), Role: model.RoleStudent, Department: "CSE"}, false},
		{"same-department faculty", Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "CSE"}, true},
		{"cross-department faculty", Actor{ID: uuid.New(), Role: model.RoleFaculty, Department: "BBA"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := svc.Serve(ctx, tt.actor, fileID)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "week1.pdf", file.FileName)
			} else {
				assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
			}
		})
	}
}

func TestFileServeUnknownID(t *testing.T) {
	svc := NewFileService(newFakeFileRepo())
	admin := Actor{ID: uuid.New(), Role: model.RoleAdmin}

	_, err := svc.Serve(context.Background(), admin, "64f000000000000000000000")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
