package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spandan/config"
	"spandan/internal/auth"
	"spandan/internal/database"
	"spandan/internal/models"
	"spandan/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func jwtConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "spandan-test",
	}
}

func protectedEngine(cfg *config.JWTConfig, tokens *repository.TokenRepository) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(cfg, tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return r
}

func get(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	cfg := jwtConfig()
	tokens := repository.NewTokenRepository(newAuthTestDB(t))
	engine := protectedEngine(cfg, tokens)

	token, err := auth.GenerateAccessToken(cfg, 7, "admin@spandan.org", "ADMIN")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(engine, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(engine, "garbage").Code)
	assert.Equal(t, http.StatusOK, get(engine, token).Code)
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	cfg := jwtConfig()
	tokens := repository.NewTokenRepository(newAuthTestDB(t))
	engine := protectedEngine(cfg, tokens)

	token, err := auth.GenerateAccessToken(cfg, 7, "admin@spandan.org", "ADMIN")
	require.NoError(t, err)
	claims, err := auth.ParseAccessToken(cfg, token)
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(claims.ID, claims.ExpiresAt.Time))

	assert.Equal(t, http.StatusUnauthorized, get(engine, token).Code)
}

func TestAuthRequiredFailsClosedOnLookupError(t *testing.T) {
	cfg := jwtConfig()
	db := newAuthTestDB(t)
	tokens := repository.NewTokenRepository(db)
	engine := protectedEngine(cfg, tokens)

	token, err := auth.GenerateAccessToken(cfg, 7, "admin@spandan.org", "ADMIN")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, get(engine, token).Code)

	// break the revocation lookup; the token must now be rejected, not waved through
	require.NoError(t, db.Migrator().DropTable(&models.RevokedToken{}))
	assert.Equal(t, http.StatusUnauthorized, get(engine, token).Code)
}
