package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-0123456789"

func TestIssuer_RoundTrip(t *testing.T) {
	iss, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)

	token, expires, err := iss.Issue(&domain.User{ID: "u1", Role: domain.RoleWorker})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	actor, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{ID: "u1", Role: domain.RoleWorker}, actor)
}

func TestIssuer_Rejects(t *testing.T) {
	iss, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)

	other, err := NewIssuer("another-secret-0123456789", time.Hour)
	require.NoError(t, err)
	foreign, _, err := other.Issue(&domain.User{ID: "u1", Role: domain.RoleCustomer})
	require.NoError(t, err)

	expiredIss, err := NewIssuer(secret, time.Minute)
	require.NoError(t, err)
	expiredIss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _, err := expiredIss.Issue(&domain.User{ID: "u1", Role: domain.RoleCustomer})
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Sub: "u1", Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, _, err := iss.Issue(&domain.User{ID: "u1", Role: domain.RoleSystem})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":        "not-a-token",
		"foreign secret": foreign,
		"expired":        expired,
		"alg none":       unsigned,
		"system role":    badRole,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Parse(token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestNewIssuer_ShortSecret(t *testing.T) {
	_, err := NewIssuer("short", time.Hour)
	assert.Error(t, err)
}
