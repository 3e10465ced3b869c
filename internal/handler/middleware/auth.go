package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"coworking-admin/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates Bearer tokens issued by the backend that owns
// the user accounts. The panel itself has no user store.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxSubjectKey = "subject"
	ctxRoleKey    = "role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"subject": claims.Subject,
			"role":    claims.Role,
		})
		c.Next()
	}
}

func GetSubject(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := value.(string)
	return subject, ok
}

func GetRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}
