package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T) *User {
	t.Helper()

	user, err := NewUser("admin@example.com", "secret-password", "Admin", RoleAdmin)
	require.NoError(t, err)
	return user
}

func TestTokenMintAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	user := testUser(t)

	signed, err := tokens.Mint(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	minter := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	signed, err := minter.Mint(testUser(t))
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestTokenVerifyExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	signed, err := tokens.Mint(testUser(t))
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.Error(t, err)
}

func TestTokenVerifyGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	for _, s := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestVerifierBeforeServiceStart(t *testing.T) {
	v := Verifier{Service: &service{}}

	_, _, _, err := v.VerifyToken("anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifierAdaptsClaims(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	user := testUser(t)

	signed, err := tokens.Mint(user)
	require.NoError(t, err)

	v := Verifier{Service: &service{tokens: tokens}}
	userID, email, role, err := v.VerifyToken(signed)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), userID)
	assert.Equal(t, user.Email, email)
	assert.Equal(t, RoleAdmin, role)
	assert.NotEqual(t, uuid.Nil.String(), userID)
}
