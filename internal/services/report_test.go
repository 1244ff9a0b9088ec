package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"github.com/sbilibin2017/gw-job-market/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestReportService_AdminDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := services.NewMockReportReader(ctrl)
	mockValidations := services.NewMockEmailValidationReader(ctrl)

	svc := services.NewReportService(mockReports, mockValidations)

	userStats := []models.UserTypeStat{{UserType: models.UserTypeFreelancer, Count: 3}}
	jobStats := []models.JobStat{{Status: models.JobStatusOpen, Count: 2, AvgBudget: 400}}
	applicationStats := []models.ApplicationStat{{Status: models.ApplicationStatusPending, Count: 5, AvgProposedRate: 70}}
	activity := []models.ActivityItem{{EventType: models.ActivityJobPosted, Username: "bob", Title: "Go developer"}}
	popular := []models.PopularJob{{JobID: 1, Title: "Go developer", ApplicationCount: 5}}
	totals := &models.DashboardTotals{Users: 4, Jobs: 2, Applications: 5, Messages: 10}
	validations := []models.EmailValidationLogDB{{ID: 1, Email: "alice@example.com", IsValid: true}}

	t.Run("assembles dashboard", func(t *testing.T) {
		mockReports.EXPECT().UserStats(gomock.Any()).Return(userStats, nil)
		mockReports.EXPECT().JobStats(gomock.Any()).Return(jobStats, nil)
		mockReports.EXPECT().ApplicationStats(gomock.Any()).Return(applicationStats, nil)
		mockReports.EXPECT().RecentActivity(gomock.Any(), 50).Return(activity, nil)
		mockReports.EXPECT().PopularJobs(gomock.Any(), 10).Return(popular, nil)
		mockReports.EXPECT().Totals(gomock.Any()).Return(totals, nil)
		mockValidations.EXPECT().ListRecent(gomock.Any(), 20).Return(validations, nil)

		dashboard, err := svc.AdminDashboard(context.Background(), models.UserTypeAdmin)
		assert.NoError(t, err)
		assert.Equal(t, userStats, dashboard.UserStats)
		assert.Equal(t, jobStats, dashboard.JobStats)
		assert.Equal(t, applicationStats, dashboard.ApplicationStats)
		assert.Equal(t, activity, dashboard.RecentActivity)
		assert.Equal(t, popular, dashboard.PopularJobs)
		assert.Equal(t, *totals, dashboard.Totals)
		assert.Equal(t, validations, dashboard.RecentValidations)
	})

	t.Run("not an admin", func(t *testing.T) {
		dashboard, err := svc.AdminDashboard(context.Background(), models.UserTypeRecruiter)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
		assert.Nil(t, dashboard)
	})

	t.Run("aggregate error", func(t *testing.T) {
		mockReports.EXPECT().UserStats(gomock.Any()).Return(nil, errors.New("db error"))

		dashboard, err := svc.AdminDashboard(context.Background(), models.UserTypeAdmin)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, dashboard)
	})
}
