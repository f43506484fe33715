package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	secret := "test-secret"

	t.Run("Round-trips all claims", func(t *testing.T) {
		token, err := GenerateSessionToken(42, "Asha K", "asha@radhira.example", "admin", secret, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ValidateSessionToken(token, secret)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "Asha K", claims.DisplayName)
		assert.Equal(t, "asha@radhira.example", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("Role claim may be empty", func(t *testing.T) {
		token, err := GenerateSessionToken(42, "Asha K", "asha@radhira.example", "", secret, time.Hour)
		require.NoError(t, err)

		claims, err := ValidateSessionToken(token, secret)
		require.NoError(t, err)
		assert.Empty(t, claims.Role)
	})

	t.Run("Expiry matches the requested lifetime", func(t *testing.T) {
		token, err := GenerateSessionToken(42, "Asha K", "asha@radhira.example", "", secret, 12*time.Hour)
		require.NoError(t, err)

		claims, err := ValidateSessionToken(token, secret)
		require.NoError(t, err)
		lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		assert.Equal(t, 12*time.Hour, lifetime)
	})
}

func TestValidateSessionToken(t *testing.T) {
	secret := "test-secret"

	t.Run("Rejects a token signed with another secret", func(t *testing.T) {
		token, err := GenerateSessionToken(42, "Asha K", "asha@radhira.example", "", "other-secret", time.Hour)
		require.NoError(t, err)

		_, err = ValidateSessionToken(token, secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Rejects an expired token", func(t *testing.T) {
		token, err := GenerateSessionToken(42, "Asha K", "asha@radhira.example", "", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateSessionToken(token, secret)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := ValidateSessionToken("not-a-token", secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestSniffImageContentType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"PNG", []byte("\x89PNG\r\n\x1a\nrest"), "image/png"},
		{"JPEG", []byte("\xff\xd8\xff\xe0rest"), "image/jpeg"},
		{"GIF87a", []byte("GIF87arest"), "image/gif"},
		{"GIF89a", []byte("GIF89arest"), "image/gif"},
		{"WEBP", []byte("RIFF\x00\x00\x00\x00WEBPrest"), "image/webp"},
		{"Unknown", []byte("plain text"), "application/octet-stream"},
		{"Empty", nil, "application/octet-stream"},
		{"Truncated RIFF", []byte("RIFF"), "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffImageContentType(tt.data))
		})
	}
}
