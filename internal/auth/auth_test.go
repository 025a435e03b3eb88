package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/pkg/ptr"
)

const testSecret = "test-secret"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "secreto123"))
	assert.False(t, CheckPassword(hash, "otra-clave"))
}

func TestTokenRoundTrip(t *testing.T) {
	p := domain.Principal{
		UserID:    42,
		Role:      domain.RoleStylist,
		StylistID: ptr.Ptr(int64(7)),
	}

	raw, err := MakeToken(p, testSecret, time.Hour)
	require.NoError(t, err)

	got, err := ParseToken(raw, testSecret)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseTokenWrongSecret(t *testing.T) {
	raw, err := MakeToken(domain.Principal{UserID: 1, Role: domain.RoleClient}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(raw, "another-secret")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestParseTokenExpired(t *testing.T) {
	raw, err := MakeToken(domain.Principal{UserID: 1, Role: domain.RoleClient}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(raw, testSecret)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrBadToken)
}
