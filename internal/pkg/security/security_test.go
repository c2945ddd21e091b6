package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("s3cret", 7, []string{"ADMIN"}, time.Now())
	require.NoError(t, err)

	claims, err := ValidateToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.True(t, claims.HasRole("ADMIN"))
	assert.False(t, claims.HasRole("EDITOR"))
}

func TestToken_Rejected(t *testing.T) {
	token, err := GenerateToken("s3cret", 7, nil, time.Now())
	require.NoError(t, err)

	_, err = ValidateToken("other", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	expired, err := GenerateToken("s3cret", 7, nil, time.Now().Add(-2*JWTExpirationTime))
	require.NoError(t, err)
	_, err = ValidateToken("s3cret", expired)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ValidateToken("", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = GenerateToken("", 1, nil, time.Now())
	assert.Error(t, err)
}

func TestSecret(t *testing.T) {
	hash, err := HashSecret("cron-key")
	require.NoError(t, err)

	assert.NoError(t, CheckSecret("cron-key", hash))
	assert.ErrorIs(t, CheckSecret("wrong", hash), ErrSecretMismatch)
	assert.ErrorIs(t, CheckSecret("", hash), ErrSecretMismatch)
	assert.ErrorIs(t, CheckSecret("cron-key", ""), ErrSecretMismatch)

	_, err = HashSecret("")
	assert.Error(t, err)
}
