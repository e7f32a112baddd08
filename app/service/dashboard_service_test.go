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

func TestDashboardRoutesByRole(t *testing.T) {
	appRepo := newFakeAppRepo()
	logRepo := newFakeLogRepo()
	svc := &DashboardService{
		providers: map[string]DashboardProvider{
			model.RoleStudent: &studentDashboard{appRepo: appRepo, logRepo: logRepo},
		},
	}

	student := Actor{ID: uuid.New(), Role: model.RoleStudent, Department: "CSE"}
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	app := appRepo.add(&model.InternshipApplication{
		StudentID: student.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 56),
		Status:    model.StatusApproved,
	})
	logRepo.add(&model.WeeklyLog{StudentID: student.ID, ApplicationID: app.ID, WeekNumber: 1, ReviewStatus: model.ReviewReviewed})
	logRepo.add(&model.WeeklyLog{StudentID: student.ID, ApplicationID: app.ID, WeekNumber: 2, ReviewStatus: model.ReviewPending})

	data, err := svc.Dashboard(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, data["role"])

	_, err = svc.Dashboard(context.Background(), Actor{ID: uuid.New(), Role: "auditor"})
	assert.True(t, utils.IsCode(err, utils.CodePermissionDenied))
}
