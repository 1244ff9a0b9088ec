package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-job-market/internal/models"
)

func TestApplicationWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewApplicationWriteRepository(db, nil)
	ctx := context.Background()

	recruiter := createTestUser(t, db, "recruiter", models.UserTypeRecruiter)
	freelancer := createTestUser(t, db, "freelancer", models.UserTypeFreelancer)
	jobID := createTestJob(t, db, recruiter, "Backend work", models.JobStatusOpen)

	rate := 45.0
	app := &models.ApplicationDB{
		JobID:        jobID,
		FreelancerID: freelancer,
		CoverLetter:  "I can do this",
		ProposedRate: &rate,
		Status:       models.ApplicationStatusPending,
	}
	id, err := repo.Save(ctx, app)
	assert.NoError(t, err)
	assert.NotZero(t, id)

	// A second application from the same freelancer to the same job hits
	// the unique key.
	_, err = repo.Save(ctx, app)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestApplicationReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewApplicationWriteRepository(db, nil)
	readRepo := NewApplicationReadRepository(db)
	ctx := context.Background()

	recruiter := createTestUser(t, db, "recruiter", models.UserTypeRecruiter)
	freelancer := createTestUser(t, db, "freelancer", models.UserTypeFreelancer)
	jobID := createTestJob(t, db, recruiter, "Backend work", models.JobStatusOpen)

	id, err := writeRepo.Save(ctx, &models.ApplicationDB{
		JobID:        jobID,
		FreelancerID: freelancer,
		Status:       models.ApplicationStatusPending,
	})
	assert.NoError(t, err)

	app, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, app)
	assert.Equal(t, "Backend work", app.JobTitle)
	assert.Equal(t, recruiter, app.JobRecruiterID)
	assert.Equal(t, "freelancer", app.FreelancerUsername)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	missing, err := readRepo.GetByID(ctx, id+1000)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplicationReadRepository_Exists(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewApplicationWriteRepository(db, nil)
	readRepo := NewApplicationReadRepository(db)
	ctx := context.Background()

	recruiter := createTestUser(t, db, "recruiter", models.UserTypeRecruiter)
	freelancer := createTestUser(t, db, "freelancer", models.UserTypeFreelancer)
	jobID := createTestJob(t, db, recruiter, "Backend work", models.JobStatusOpen)

	exists, err := readRepo.Exists(ctx, jobID, freelancer)
	assert.NoError(t, err)
	assert.False(t, exists)

	_, err = writeRepo.Save(ctx, &models.ApplicationDB{
		JobID:        jobID,
		FreelancerID: freelancer,
		Status:       models.ApplicationStatusPending,
	})
	assert.NoError(t, err)

	exists, err = readRepo.Exists(ctx, jobID, freelancer)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestApplicationReadRepository_Lists(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewApplicationWriteRepository(db, nil)
	readRepo := NewApplicationReadRepository(db)
	ctx := context.Background()

	recruiter := createTestUser(t, db, "recruiter", models.UserTypeRecruiter)
	other := createTestUser(t, db, "other", models.UserTypeRecruiter)
	freelancer := createTestUser(t, db, "freelancer", models.UserTypeFreelancer)

	jobA := createTestJob(t, db, recruiter, "Job A", models.JobStatusOpen)
	jobB := createTestJob(t, db, other, "Job B", models.JobStatusOpen)

	for _, jobID := range []int64{jobA, jobB} {
		_, err := writeRepo.Save(ctx, &models.ApplicationDB{
			JobID:        jobID,
			FreelancerID: freelancer,
			Status:       models.ApplicationStatusPending,
		})
		assert.NoError(t, err)
	}

	mine, err := readRepo.ListByFreelancer(ctx, freelancer)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	received, err := readRepo.ListByRecruiter(ctx, recruiter)
	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, "Job A", received[0].JobTitle)
	assert.Equal(t, "freelancer", received[0].FreelancerUsername)

	all, err := readRepo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	for _, a := range all {
		assert.Equal(t, "freelancer", a.FreelancerUsername)
	}
}

func TestApplicationWriteRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewApplicationWriteRepository(db, nil)
	ctx := context.Background()

	recruiter := createTestUser(t, db, "recruiter", models.UserTypeRecruiter)
	freelancer := createTestUser(t, db, "freelancer", models.UserTypeFreelancer)
	jobID := createTestJob(t, db, recruiter, "Backend work", models.JobStatusOpen)

	id, err := writeRepo.Save(ctx, &models.ApplicationDB{
		JobID:        jobID,
		FreelancerID: freelancer,
		Status:       models.ApplicationStatusPending,
	})
	assert.NoError(t, err)

	rows, err := writeRepo.UpdateStatus(ctx, id, models.ApplicationStatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	var status string
	err = db.Get(&status, "SELECT status FROM applications WHERE id=$1", id)
	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, status)

	rows, err = writeRepo.UpdateStatus(ctx, id+1000, models.ApplicationStatusRejected)
	assert.NoError(t, err)
	assert.Zero(t, rows)
}
