package service

import (
	"testing"

	"spandan/internal/auth"
	"spandan/internal/models"
	"spandan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, users *repository.UserRepository, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Email: email, Name: "Test User", PasswordHash: string(hash), Role: role}
	require.NoError(t, users.Create(u))
	return u
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	tokens := repository.NewTokenRepository(db)
	cfg := testConfig()
	svc := NewAuthService(cfg, users, tokens)

	seedUser(t, users, "admin@spandan.org", "correct-horse", "ADMIN")

	u, access, refresh, err := svc.Login("admin@spandan.org", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "admin@spandan.org", u.Email)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := auth.ParseAccessToken(&cfg.JWT, access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.NotEmpty(t, claims.ID, "access token must carry a jti")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(testConfig(), users, repository.NewTokenRepository(db))

	seedUser(t, users, "admin@spandan.org", "correct-horse", "ADMIN")

	_, _, _, err := svc.Login("admin@spandan.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, _, err = svc.Login("nobody@spandan.org", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLoginWithGoogleRequiresExistingAccount(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(testConfig(), users, repository.NewTokenRepository(db))

	seedUser(t, users, "editor@spandan.org", "irrelevant", "EDITOR")

	u, _, _, err := svc.LoginWithGoogle("editor@spandan.org")
	require.NoError(t, err)
	assert.Equal(t, "EDITOR", u.Role)

	_, _, _, err = svc.LoginWithGoogle("stranger@gmail.com")
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	tokens := repository.NewTokenRepository(db)
	cfg := testConfig()
	svc := NewAuthService(cfg, users, tokens)

	seedUser(t, users, "admin@spandan.org", "correct-horse", "ADMIN")
	_, access, _, err := svc.Login("admin@spandan.org", "correct-horse")
	require.NoError(t, err)

	claims, err := auth.ParseAccessToken(&cfg.JWT, access)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(claims))

	revoked, err := tokens.IsRevoked(claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(testConfig(), users, repository.NewTokenRepository(db))

	u := seedUser(t, users, "admin@spandan.org", "old-password", "ADMIN")

	assert.ErrorIs(t, svc.ChangePassword(u.ID, "wrong", "new-password-1"), ErrInvalidCreds)
	require.NoError(t, svc.ChangePassword(u.ID, "old-password", "new-password-1"))

	_, _, _, err := svc.Login("admin@spandan.org", "old-password")
	assert.ErrorIs(t, err, ErrInvalidCreds)
	_, _, _, err = svc.Login("admin@spandan.org", "new-password-1")
	assert.NoError(t, err)
}

func TestRefreshToken(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	cfg := testConfig()
	svc := NewAuthService(cfg, users, repository.NewTokenRepository(db))

	u := seedUser(t, users, "admin@spandan.org", "correct-horse", "ADMIN")
	_, _, refresh, err := svc.Login("admin@spandan.org", "correct-horse")
	require.NoError(t, err)

	access, newRefresh, err := svc.RefreshToken(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newRefresh)

	claims, err := auth.ParseAccessToken(&cfg.JWT, access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, _, err = svc.RefreshToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
