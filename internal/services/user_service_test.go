package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)
	assert.Equal(t, "alice", created.Username)
	assert.Empty(t, created.HashedPassword)

	authed, err := svc.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, authed.UserID)
	assert.Empty(t, authed.HashedPassword)
}

func TestUserService_StoredHashIsNotPlaintext(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	var stored string
	err = db.QueryRow(`SELECT hashed_password FROM users WHERE username = ?`, "alice").Scan(&stored)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored)
	assert.NotContains(t, stored, "secret123")
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "different-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_AuthenticateFailuresLookAlike(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "alice", "wrong")
	_, unknownUser := svc.Authenticate(ctx, "mallory", "secret123")

	// Same sentinel for both so the API cannot enumerate accounts
	assert.ErrorIs(t, wrongPassword, ErrInvalidLogin)
	assert.ErrorIs(t, unknownUser, ErrInvalidLogin)
	assert.Equal(t, wrongPassword, unknownUser)
}
