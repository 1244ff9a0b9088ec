package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a disposable Postgres with the full schema.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		user_type VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		skills_required TEXT NOT NULL DEFAULT '',
		budget DOUBLE PRECISION,
		duration VARCHAR(100) NOT NULL DEFAULT '',
		location VARCHAR(100) NOT NULL DEFAULT '',
		recruiter_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL DEFAULT 'open',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS applications (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		freelancer_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		cover_letter TEXT NOT NULL DEFAULT '',
		proposed_rate DOUBLE PRECISION,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (job_id, freelancer_id)
	);

	CREATE TABLE IF NOT EXISTS conversations (
		id BIGSERIAL PRIMARY KEY,
		user1_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		user2_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (user1_id, user2_id),
		CHECK (user1_id < user2_id)
	);

	CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		conversation_id BIGINT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		sender_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		receiver_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages (conversation_id, id);
	CREATE INDEX IF NOT EXISTS idx_messages_unread ON messages (receiver_id) WHERE NOT is_read;

	CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		notification_type VARCHAR(50) NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS email_validation_logs (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		is_valid BOOLEAN NOT NULL,
		validation_message VARCHAR(255) NOT NULL DEFAULT '',
		action_type VARCHAR(20) NOT NULL,
		attempted_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// createTestUser inserts a user directly and returns its id.
func createTestUser(t *testing.T, db *sqlx.DB, username, userType string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO users (username, email, password_hash, user_type)
		VALUES ($1, $2, 'hash', $3)
		RETURNING id
	`, username, username+"@example.com", userType)
	assert.NoError(t, err)
	return id
}

// createTestJob inserts a job directly and returns its id.
func createTestJob(t *testing.T, db *sqlx.DB, recruiterID int64, title, status string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, `
		INSERT INTO jobs (title, description, recruiter_id, status)
		VALUES ($1, 'description', $2, $3)
		RETURNING id
	`, title, recruiterID, status)
	assert.NoError(t, err)
	return id
}
