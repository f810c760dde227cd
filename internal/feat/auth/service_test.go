package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peperuizdev/portfolio/internal/testutil"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	provider := testutil.NewTestProvider(t)
	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: "1h"},
	}

	svc := NewService(provider, cfg, logger.NewNoopLogger())
	require.NoError(t, svc.Start(context.Background()))
	return svc
}

func TestCreateAndGetUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "admin@example.com", "password123", "Admin", RoleAdmin)
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.Equal(t, RoleAdmin, got.Role)
	assert.True(t, got.IsAdmin())

	byEmail, err := svc.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin@example.com", "password123", "Admin", RoleAdmin)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "admin@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "admin@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginMintsVerifiableToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "admin@example.com", "password123", "Admin", RoleAdmin)
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := svc.Tokens().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "admin@example.com", "password123", "Admin", RoleAdmin)
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "wrong", "newpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("new password too short", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "password123", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("unknown user", func(t *testing.T) {
		other, err := NewUser("x@example.com", "password123", "X", RoleAdmin)
		require.NoError(t, err)
		err = svc.ChangePassword(ctx, other.ID, "password123", "newpassword")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("success rotates the hash", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, user.ID, "password123", "newpassword"))

		_, err := svc.Authenticate(ctx, "admin@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "admin@example.com", "newpassword")
		assert.NoError(t, err)
	})
}

// Start must leave the service ready for concurrent first requests;
// nothing may be initialized lazily on the request path.
func TestConcurrentFirstRequestsAfterStart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetUserByEmail(ctx, "nobody@example.com")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.ErrorIs(t, err, ErrUserNotFound)
	}
}

func TestSeederCreatesInitialAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seeder := NewSeeder(svc, logger.NewNoopLogger())
	seeder.SetCredentialsPath(t.TempDir() + "/credentials.txt")
	require.NoError(t, seeder.Start(ctx))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsAdmin())

	// A second run must not create another user.
	require.NoError(t, seeder.Start(ctx))
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
