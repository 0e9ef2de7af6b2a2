package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing-32-chars"

// testClock is a settable clock for token expiry tests.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestNewTokenService(t *testing.T) {
	svc, err := NewTokenService("")
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewTokenService(testSecret)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTokenIssueVerify(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)

	token, err := svc.Issue(7)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestTokenExpiresAfter24Hours(t *testing.T) {
	clock := newTestClock()
	svc, err := NewTokenService(testSecret, WithClock(clock.Now))
	require.NoError(t, err)

	token, err := svc.Issue(1)
	require.NoError(t, err)

	clock.t = clock.t.Add(23*time.Hour + 59*time.Minute)
	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	clock.t = clock.t.Add(time.Minute + time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTokenVerifyRejects(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)

	other, err := NewTokenService("another-secret-entirely")
	require.NoError(t, err)
	forged, err := other.Issue(1)
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func(id uint) *TokenClaims {
		now := time.Now()
		return &TokenClaims{
			AdminID: id,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong signature", token: forged},
		{name: "alg none", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid(1))},
		{name: "other hmac algorithm", token: sign(jwt.SigningMethodHS512, []byte(testSecret), valid(1))},
		{name: "missing expiry", token: sign(jwt.SigningMethodHS256, []byte(testSecret), &TokenClaims{
			AdminID:          1,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
		})},
		{name: "zero subject", token: sign(jwt.SigningMethodHS256, []byte(testSecret), valid(0))},
		{name: "subject mismatch", token: sign(jwt.SigningMethodHS256, []byte(testSecret), valid(2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
			assert.Zero(t, id)
		})
	}
}
