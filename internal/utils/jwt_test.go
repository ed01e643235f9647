package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-facade/internal/config"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))
	require.NoError(t, err)
	return signed
}

func TestInspectToken_Success(t *testing.T) {
	issued := time.Now().Add(-time.Minute).Truncate(time.Second)
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	token := signTestToken(t, jwt.MapClaims{
		"sub": "42",
		"iat": issued.Unix(),
		"exp": expires.Unix(),
	})

	info, err := InspectToken(token)
	require.NoError(t, err)

	assert.Equal(t, "42", info.Subject)
	assert.Equal(t, "HS256", info.Algorithm)
	assert.True(t, issued.Equal(info.IssuedAt))
	assert.True(t, expires.Equal(info.ExpiresAt))
	assert.False(t, info.Expired)
}

func TestInspectToken_Expired(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.True(t, info.Expired)
}

func TestInspectToken_NoExpiry(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "1"})

	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.True(t, info.IssuedAt.IsZero())
	assert.False(t, info.Expired)
}

func TestInspectToken_UserClaimFallback(t *testing.T) {
	prevNow := now
	now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prevNow })

	// the compiled-in credential carries a numeric "user" claim and an RS256 header
	info, err := InspectToken(config.DefaultFallbackToken)
	require.NoError(t, err)

	assert.Equal(t, "1988197886547525633", info.Subject)
	assert.Equal(t, "RS256", info.Algorithm)
	assert.Equal(t, int64(1763003142), info.ExpiresAt.Unix())
	assert.True(t, info.Expired)
}

func TestInspectToken_Errors(t *testing.T) {
	for _, token := range []string{"", "   ", "opaque-session-token", "a.b.c"} {
		t.Run(token, func(t *testing.T) {
			_, err := InspectToken(token)
			require.ErrorIs(t, err, ErrNotJWT)
		})
	}
}
