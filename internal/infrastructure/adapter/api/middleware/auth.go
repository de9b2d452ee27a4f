package middleware

import (
	"net/http"
	"strings"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	domainerr "github.com/fundr-ph/donation-ledger/internal/domain/error"
	authport "github.com/fundr-ph/donation-ledger/internal/domain/port/auth"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key holding the authenticated caller
const identityKey = "caller_identity"

// Auth middleware validates the Bearer token and attaches the caller's
// identity to the request context
func Auth(tokens authport.TokenService, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Missing Authorization header",
			})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Authorization header must be a Bearer token",
			})
			return
		}

		identity, err := tokens.Parse(token)
		if err != nil {
			logger.Warn("Rejected request with invalid token", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CallerIdentity returns the authenticated identity set by the Auth middleware
func CallerIdentity(c *gin.Context) (entity.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}
