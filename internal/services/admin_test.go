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

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockUserLister(ctrl)
	mockGetter := services.NewMockUserGetter(ctrl)
	mockUserDeleter := services.NewMockUserDeleter(ctrl)
	mockJobDeleter := services.NewMockJobDeleter(ctrl)
	mockJobLister := services.NewMockJobLister(ctrl)
	mockAppLister := services.NewMockApplicationLister(ctrl)

	svc := services.NewAdminService(mockLister, mockGetter, mockUserDeleter, mockJobDeleter, mockJobLister, mockAppLister)

	t.Run("returns users", func(t *testing.T) {
		users := []models.UserDB{{ID: 1, Username: "alice", UserType: models.UserTypeFreelancer}}
		mockLister.EXPECT().
			ListNonAdmins(gomock.Any()).
			Return(users, nil)

		got, err := svc.ListUsers(context.Background(), models.UserTypeAdmin)
		assert.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("not an admin", func(t *testing.T) {
		got, err := svc.ListUsers(context.Background(), models.UserTypeRecruiter)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
		assert.Nil(t, got)
	})
}

func TestAdminService_ListJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockUserLister(ctrl)
	mockGetter := services.NewMockUserGetter(ctrl)
	mockUserDeleter := services.NewMockUserDeleter(ctrl)
	mockJobDeleter := services.NewMockJobDeleter(ctrl)
	mockJobLister := services.NewMockJobLister(ctrl)
	mockAppLister := services.NewMockApplicationLister(ctrl)

	svc := services.NewAdminService(mockLister, mockGetter, mockUserDeleter, mockJobDeleter, mockJobLister, mockAppLister)

	t.Run("returns jobs", func(t *testing.T) {
		jobs := []models.JobDB{{ID: 1, Title: "Go developer", Status: models.JobStatusOpen, RecruiterID: 2}}
		mockJobLister.EXPECT().
			ListAll(gomock.Any()).
			Return(jobs, nil)

		got, err := svc.ListJobs(context.Background(), models.UserTypeAdmin)
		assert.NoError(t, err)
		assert.Equal(t, jobs, got)
	})

	t.Run("not an admin", func(t *testing.T) {
		got, err := svc.ListJobs(context.Background(), models.UserTypeFreelancer)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
		assert.Nil(t, got)
	})

	t.Run("lister error", func(t *testing.T) {
		mockJobLister.EXPECT().
			ListAll(gomock.Any()).
			Return(nil, errors.New("db error"))

		got, err := svc.ListJobs(context.Background(), models.UserTypeAdmin)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}

func TestAdminService_ListApplications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockUserLister(ctrl)
	mockGetter := services.NewMockUserGetter(ctrl)
	mockUserDeleter := services.NewMockUserDeleter(ctrl)
	mockJobDeleter := services.NewMockJobDeleter(ctrl)
	mockJobLister := services.NewMockJobLister(ctrl)
	mockAppLister := services.NewMockApplicationLister(ctrl)

	svc := services.NewAdminService(mockLister, mockGetter, mockUserDeleter, mockJobDeleter, mockJobLister, mockAppLister)

	t.Run("returns applications", func(t *testing.T) {
		apps := []models.ApplicationWithJob{{
			ApplicationDB: models.ApplicationDB{ID: 1, JobID: 2, FreelancerID: 3, Status: models.ApplicationStatusPending},
			JobTitle:      "Go developer",
		}}
		mockAppLister.EXPECT().
			ListAll(gomock.Any()).
			Return(apps, nil)

		got, err := svc.ListApplications(context.Background(), models.UserTypeAdmin)
		assert.NoError(t, err)
		assert.Equal(t, apps, got)
	})

	t.Run("not an admin", func(t *testing.T) {
		got, err := svc.ListApplications(context.Background(), models.UserTypeRecruiter)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
		assert.Nil(t, got)
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockUserLister(ctrl)
	mockGetter := services.NewMockUserGetter(ctrl)
	mockUserDeleter := services.NewMockUserDeleter(ctrl)
	mockJobDeleter := services.NewMockJobDeleter(ctrl)
	mockJobLister := services.NewMockJobLister(ctrl)
	mockAppLister := services.NewMockApplicationLister(ctrl)

	svc := services.NewAdminService(mockLister, mockGetter, mockUserDeleter, mockJobDeleter, mockJobLister, mockAppLister)

	tests := []struct {
		name      string
		userType  string
		target    *models.UserDB
		getterErr error
		wantErr   error
	}{
		{
			name:     "successful delete",
			userType: models.UserTypeAdmin,
			target:   &models.UserDB{ID: 2, Username: "bob", UserType: models.UserTypeFreelancer},
		},
		{
			name:     "not an admin",
			userType: models.UserTypeFreelancer,
			wantErr:  services.ErrNotAdmin,
		},
		{
			name:     "target not found",
			userType: models.UserTypeAdmin,
			target:   nil,
			wantErr:  services.ErrUserNotFound,
		},
		{
			name:     "target is an admin",
			userType: models.UserTypeAdmin,
			target:   &models.UserDB{ID: 3, Username: "root", UserType: models.UserTypeAdmin},
			wantErr:  services.ErrCannotDeleteAdmin,
		},
		{
			name:      "getter error",
			userType:  models.UserTypeAdmin,
			getterErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.userType == models.UserTypeAdmin {
				mockGetter.EXPECT().
					GetByID(gomock.Any(), int64(2)).
					Return(tt.target, tt.getterErr)
			}
			if tt.wantErr == nil {
				mockUserDeleter.EXPECT().
					Delete(gomock.Any(), int64(2)).
					Return(int64(1), nil)
			}

			err := svc.DeleteUser(context.Background(), tt.userType, 2)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminService_DeleteJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := services.NewMockUserLister(ctrl)
	mockGetter := services.NewMockUserGetter(ctrl)
	mockUserDeleter := services.NewMockUserDeleter(ctrl)
	mockJobDeleter := services.NewMockJobDeleter(ctrl)
	mockJobLister := services.NewMockJobLister(ctrl)
	mockAppLister := services.NewMockApplicationLister(ctrl)

	svc := services.NewAdminService(mockLister, mockGetter, mockUserDeleter, mockJobDeleter, mockJobLister, mockAppLister)

	t.Run("successful delete", func(t *testing.T) {
		mockJobDeleter.EXPECT().
			Delete(gomock.Any(), int64(3)).
			Return(int64(1), nil)

		err := svc.DeleteJob(context.Background(), models.UserTypeAdmin, 3)
		assert.NoError(t, err)
	})

	t.Run("not an admin", func(t *testing.T) {
		err := svc.DeleteJob(context.Background(), models.UserTypeRecruiter, 3)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
	})

	t.Run("job not found", func(t *testing.T) {
		mockJobDeleter.EXPECT().
			Delete(gomock.Any(), int64(99)).
			Return(int64(0), nil)

		err := svc.DeleteJob(context.Background(), models.UserTypeAdmin, 99)
		assert.ErrorIs(t, err, services.ErrJobNotFound)
	})
}
