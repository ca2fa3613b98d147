package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/service"
)

const (
	ctxUserID   = "auth_user_id"
	ctxUserRole = "auth_user_role"
)

// RequireAuth validates the Bearer token and stores the requester identity in the
// gin context. Identity is always carried per request, never as process state.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authentication required", "missing bearer token"))
			return
		}
		claims, err := service.ParseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authentication required", "invalid or expired token"))
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates quiz management routes. Run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("Admin access required", ""))
			return
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated requester's id, 0 when absent.
func UserIDFromContext(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func RoleFromContext(c *gin.Context) string {
	if v, ok := c.Get(ctxUserRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
