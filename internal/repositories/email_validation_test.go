package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-job-market/internal/models"
)

func TestEmailValidationRepository_SaveAndListRecent(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewEmailValidationWriteRepository(db, nil)
	readRepo := NewEmailValidationReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "alice@example.com", models.EmailActionRegistration, true, "Email validated successfully")
	assert.NoError(t, err)
	assert.NotZero(t, id)

	_, err = writeRepo.Save(ctx, "broken-at-example", models.EmailActionLogin, false, "Invalid email format")
	assert.NoError(t, err)

	logs, err := readRepo.ListRecent(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, logs, 2)

	// Newest first.
	assert.Equal(t, "broken-at-example", logs[0].Email)
	assert.False(t, logs[0].IsValid)
	assert.Equal(t, "Invalid email format", logs[0].ValidationMessage)
	assert.Equal(t, models.EmailActionLogin, logs[0].ActionType)
	assert.False(t, logs[0].AttemptedAt.IsZero())

	assert.Equal(t, "alice@example.com", logs[1].Email)
	assert.True(t, logs[1].IsValid)
	assert.Equal(t, "Email validated successfully", logs[1].ValidationMessage)
	assert.Equal(t, models.EmailActionRegistration, logs[1].ActionType)

	logs, err = readRepo.ListRecent(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
}
