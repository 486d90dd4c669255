package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	a := New("test-secret")

	token, err := a.GenerateJWT("alice@example.com", "learner")
	require.NoError(t, err)

	claims, err := a.ValidateJWT(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.UserKey)
	require.Equal(t, "learner", claims.Role)
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	token, err := New("secret-one").GenerateJWT("alice", "learner")
	require.NoError(t, err)

	_, err = New("secret-two").ValidateJWT(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := New("test-secret").ValidateJWT("not.a.token")
	require.Error(t, err)
}
