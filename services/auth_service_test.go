package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"c4knives-backend/models"
	"c4knives-backend/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T, opts ...TokenOption) (*AuthService, *AdminService, *TokenService) {
	t.Helper()

	db := testdb.New(t)
	admins := NewAdminService(db, slog.New(slog.DiscardHandler))
	tokens, err := NewTokenService(testSecret, opts...)
	require.NoError(t, err)
	return NewAuthService(admins, tokens), admins, tokens
}

func TestEnsureDefaultCreatesOnce(t *testing.T) {
	ctx := context.Background()
	_, admins, _ := newTestAuth(t)

	created, err := admins.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = admins.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := admins.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	admin, err := admins.GetByUsername(ctx, DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminID, admin.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(DefaultAdminPassword)))
}

func TestEnsureDefaultNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	_, admins, _ := newTestAuth(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-knives"), bcrypt.MinCost)
	require.NoError(t, err)
	existing := models.Admin{ID: 5, Username: "owner", PasswordHash: string(hash)}
	require.NoError(t, admins.DB.Create(&existing).Error)

	created, err := admins.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	_, err = admins.GetByUsername(ctx, DefaultAdminUsername)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := admins.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, string(hash), got.PasswordHash)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth, admins, tokens := newTestAuth(t)
	_, err := admins.EnsureDefault(ctx)
	require.NoError(t, err)

	token, admin, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminID, admin.ID)
	assert.Equal(t, "admin", admin.Username)

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	auth, admins, _ := newTestAuth(t)
	_, err := admins.EnsureDefault(ctx)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "root", password: "admin123"},
		{name: "wrong password", username: "admin", password: "admin1234"},
		{name: "both wrong", username: "nobody", password: "nothing"},
		{name: "username differs in case", username: "Admin", password: "admin123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, admin, err := auth.Login(ctx, tt.username, tt.password)
			assert.Equal(t, ErrInvalidCredentials, err)
			assert.Empty(t, token)
			assert.Nil(t, admin)
		})
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	auth, _, _ := newTestAuth(t)

	_, _, err := auth.Login(context.Background(), "", "admin123")
	assert.True(t, IsValidation(err))

	_, _, err = auth.Login(context.Background(), "admin", "")
	assert.True(t, IsValidation(err))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	auth, admins, tokens := newTestAuth(t, WithClock(clock.Now))
	_, err := admins.EnsureDefault(ctx)
	require.NoError(t, err)

	token, _, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	id, err := auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminID, id)

	stranger, err := tokens.Issue(99)
	require.NoError(t, err)
	_, err = auth.Authenticate(ctx, stranger)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	clock.t = clock.t.Add(TokenTTL + time.Second)
	_, err = auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	auth, admins, _ := newTestAuth(t)
	_, err := admins.EnsureDefault(ctx)
	require.NoError(t, err)

	admin, err := auth.Me(ctx, DefaultAdminID)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	_, err = auth.Me(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
