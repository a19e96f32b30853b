package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextEmail    = "email"
	ContextRole     = "role"
)

// TokenVerifier turns a bearer token into the caller's identity.
type TokenVerifier interface {
	Verify(token string) (entity.Identity, error)
}

// AuthMiddleWare rejects requests without a valid bearer token.
func AuthMiddleWare(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is missing or malformed"})
			return
		}
		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and lets anonymous requests through.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if identity, err := verifier.Verify(token); err == nil {
				setIdentity(c, identity)
			}
		}
		c.Next()
	}
}

// IdentityFrom reads the identity stored by the auth middlewares. UserID is empty for anonymous callers.
func IdentityFrom(c *gin.Context) entity.Identity {
	return entity.Identity{
		UserID:   c.GetString(ContextUserID),
		Username: c.GetString(ContextUsername),
		Email:    c.GetString(ContextEmail),
		Role:     entity.UserRole(c.GetString(ContextRole)),
	}
}

func setIdentity(c *gin.Context, identity entity.Identity) {
	c.Set(ContextUserID, identity.UserID)
	c.Set(ContextUsername, identity.Username)
	c.Set(ContextEmail, identity.Email)
	c.Set(ContextRole, string(identity.Role))
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
