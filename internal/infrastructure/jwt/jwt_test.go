package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAccessToken(t *testing.T) {
	mgr := NewJWTManager("test-secret")

	token, err := mgr.GenerateAccessToken("user-42", time.Minute)
	require.NoError(t, err)

	userID, err := mgr.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").GenerateAccessToken("user-42", time.Minute)
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b").VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	mgr := NewJWTManager("test-secret")

	token, err := mgr.GenerateAccessToken("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = mgr.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	_, err := NewJWTManager("test-secret").VerifyAccessToken("not-a-token")

	assert.Error(t, err)
}
