package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	secret := "session-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-1", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-1", secret, 1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-1", secret, -1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Not A Token", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}

func TestGenerateIDs(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
	assert.Len(t, GenerateSessionID(), 36)
}
