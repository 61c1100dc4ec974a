package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// defaultAdminRole is assumed for admin profiles that carry no role.
const defaultAdminRole = "admin"

// RequireRoles only lets admins whose profile role is in allowedRoles through.
// It runs after RequireAdmin.
//
//	console.DELETE("/cities/:id", RequireRoles("admin", "superadmin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		admin, ok := GetSession(c).Admin()
		if !ok {
			abortUnauthorized(c, "Admin login required")
			return
		}
		role := strings.ToLower(strings.TrimSpace(admin.Role))
		if role == "" {
			role = defaultAdminRole
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":    "Your role cannot perform this action",
				"error":      "forbidden",
				"code":       "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
