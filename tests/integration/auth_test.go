package integration

import (
	"context"
	"testing"
	"time"

	"github.com/dvasic/resumecraft-api/internal/services"
	"github.com/dvasic/resumecraft-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Integration_RegisterAndAuthenticate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jane Doe", "jane@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	authed, err := svc.Authenticate(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_Integration_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane Doe", "jane@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Jane", "jane@example.com", "password456")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestTokenService_Integration_RefreshLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	tokenSvc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	hash := services.HashToken("refresh-token-1")

	require.NoError(t, tokenSvc.StoreRefreshToken(ctx, user.ID, hash, time.Now().Add(time.Hour)))

	userID, err := tokenSvc.ValidateRefreshToken(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	require.NoError(t, tokenSvc.RevokeRefreshToken(ctx, hash))

	_, err = tokenSvc.ValidateRefreshToken(ctx, hash)
	assert.Error(t, err)
}

func TestTokenService_Integration_CleanupExpired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	tokenSvc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	expired := services.HashToken("expired-token")
	live := services.HashToken("live-token")

	require.NoError(t, tokenSvc.StoreRefreshToken(ctx, user.ID, expired, time.Now().Add(-time.Hour)))
	require.NoError(t, tokenSvc.StoreRefreshToken(ctx, user.ID, live, time.Now().Add(time.Hour)))

	require.NoError(t, tokenSvc.CleanupExpired(ctx))

	_, err := tokenSvc.ValidateRefreshToken(ctx, expired)
	assert.Error(t, err)

	userID, err := tokenSvc.ValidateRefreshToken(ctx, live)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestUserService_Integration_ChangePassword(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jane Doe", "jane@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "password123", "new-password"))

	_, err = svc.Authenticate(ctx, "jane@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "jane@example.com", "new-password")
	assert.NoError(t, err)
}
