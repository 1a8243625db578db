package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"sharix/internal/models/db_models"
	"sharix/pkg/utils"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		role, ok := db_models.ParseRole(claims.Role)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass caller identity to the wrapped handlers
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireRoles gates a route to the given role set. An empty set means any
// authenticated caller.
func RequireRoles(allowed ...db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(ContextRole)
		role, ok := roleValue.(db_models.Role)
		if !exists || !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
			c.Abort()
			return
		}

		if len(allowed) > 0 && !role.In(allowed...) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CallerID returns the authenticated caller's user id, if any.
func CallerID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}
