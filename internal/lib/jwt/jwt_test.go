package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 7*24*time.Hour)
	adminID := uuid.New()

	raw, err := m.NewAccessToken(adminID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := m.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, adminID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(KindAccess), claims.Kind)
	assert.NotEmpty(t, claims.ID)
	_, err = uuid.Parse(claims.ID)
	assert.NoError(t, err, "jti must be a UUID")

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestRefreshTokenHasNoUsername(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 7*24*time.Hour)

	raw, err := m.NewRefreshToken(uuid.New())
	require.NoError(t, err)

	claims, err := m.Parse(raw)
	require.NoError(t, err)

	assert.Empty(t, claims.Username)
	assert.Equal(t, string(KindRefresh), claims.Kind)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenIdentifiersAreUnique(t *testing.T) {
	m := NewManager(testSecret, time.Hour, time.Hour)
	adminID := uuid.New()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		raw, err := m.NewAccessToken(adminID, "admin")
		require.NoError(t, err)

		claims, err := m.Parse(raw)
		require.NoError(t, err)
		require.False(t, seen[claims.ID], "jti reused")
		seen[claims.ID] = true
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewManager(testSecret, time.Hour, time.Hour)
	other := NewManager("another-secret", time.Hour, time.Hour)

	raw, err := m.NewAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = other.Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager(testSecret, time.Hour, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Parse(raw)
		assert.Error(t, err)
	}
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	m := NewManager(testSecret, -time.Minute, time.Hour)
	adminID := uuid.New()

	raw, err := m.NewAccessToken(adminID, "admin")
	require.NoError(t, err)

	_, err = m.Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	claims, err := m.ParseExpired(raw)
	require.NoError(t, err)
	assert.Equal(t, adminID.String(), claims.Subject)
}

func TestParseExpiredStillChecksSignature(t *testing.T) {
	m := NewManager(testSecret, -time.Minute, time.Hour)
	other := NewManager("another-secret", time.Hour, time.Hour)

	raw, err := m.NewAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = other.ParseExpired(raw)
	assert.Error(t, err)
}
