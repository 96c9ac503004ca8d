package services_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrail/internal/database"
	"jobtrail/internal/services"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := services.NewAccountService(newTestDB(t))

	created, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Empty(t, created.PasswordHash, "hash must not leave the service")

	authed, err := svc.Authenticate("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)
	assert.Empty(t, authed.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAccountService(db)

	_, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other-password")
	require.ErrorIs(t, err, services.ErrDuplicateUsername)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM accounts").Scan(&count))
	assert.Equal(t, 1, count, "failed registration must not create an account")
}

func TestRegisterEmptyFields(t *testing.T) {
	svc := services.NewAccountService(newTestDB(t))

	_, err := svc.Register("", "s3cret")
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Register("alice", "")
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestAuthenticateFailures(t *testing.T) {
	svc := services.NewAccountService(newTestDB(t))

	_, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	for _, password := range []string{"wrong", "S3CRET", "s3cret ", ""} {
		_, err := svc.Authenticate("alice", password)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials, "password %q", password)
	}

	_, err = svc.Authenticate("nobody", "s3cret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials, "unknown username must look like a bad password")
}

func TestGetByID(t *testing.T) {
	svc := services.NewAccountService(newTestDB(t))

	created, err := svc.Register("alice", "s3cret")
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.GetByID("missing-id")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
