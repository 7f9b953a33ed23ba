package middleware

import (
	"context"
	"strings"

	"rentdesk/errors"
	"rentdesk/response"
	"rentdesk/types"

	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
	TokenKey    = "accessToken"
)

// Authenticator verifies an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*types.Identity, error)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// AuthMiddleware verifies the bearer token and attaches the identity.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			response.AppError(c, errors.NewAppError(errors.ErrCodeMissingToken, "missing access token", nil))
			c.Abort()
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			response.AppError(c, err)
			c.Abort()
			return
		}

		c.Set(IdentityKey, *identity)
		c.Set(UserIDKey, identity.UserID)
		c.Set(UserRoleKey, identity.Role)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

// RoleMiddleware requires one of roles on an already authenticated request.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !hasRole(identity.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity set by AuthMiddleware.
func GetIdentity(c *gin.Context) (types.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return types.Identity{}, false
	}
	identity, ok := v.(types.Identity)
	return identity, ok
}

// ErrorHandler renders the last error attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.AppError(c, c.Errors.Last().Err)
		}
	}
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
