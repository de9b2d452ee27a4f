package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	mauth "github.com/fundr-ph/donation-ledger/mocks/port/auth"
	mcore "github.com/fundr-ph/donation-ledger/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(tokens *mauth.MockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(tokens, mcore.NewSilentLogger()), func(c *gin.Context) {
		identity, ok := CallerIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": string(identity.Role)})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Valid bearer token", func(t *testing.T) {
		tokens := new(mauth.MockTokenService)
		tokens.On("Parse", "good-token").Return(entity.Identity{UserID: "user-1", Role: entity.RoleDonor}, nil)
		router := setupAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})

	t.Run("Missing header", func(t *testing.T) {
		router := setupAuthRouter(new(mauth.MockTokenService))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Not a bearer token", func(t *testing.T) {
		router := setupAuthRouter(new(mauth.MockTokenService))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		tokens := new(mauth.MockTokenService)
		tokens.On("Parse", "bad-token").Return(entity.Identity{}, errs.ErrInvalidToken)
		router := setupAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCallerIdentityWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CallerIdentity(c)
	assert.False(t, ok)
}
