package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword("password123", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret-key")

	token, err := m.IssueToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewManager("secret-one").IssueToken(7)
	require.NoError(t, err)

	_, err = NewManager("secret-two").VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	m := &Manager{secret: []byte("test-secret-key"), ttl: -time.Minute}
	token, err := m.IssueToken(7)
	require.NoError(t, err)

	_, err = NewManager("test-secret-key").VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret-key")

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.VerifyToken(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyToken_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "7"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("test-secret-key").VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_MalformedSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret-key")
	for _, sub := range []any{"abc", "0", 42} {
		claims := jwt.MapClaims{
			"sub": sub,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		require.NoError(t, err)

		_, err = NewManager("test-secret-key").VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
