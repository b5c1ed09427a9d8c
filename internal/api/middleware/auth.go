package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	"github.com/antrhizom/stud-i-agency-check/pkg/redis"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// JWTAuth prüft den Access-Token aus Authorization: Bearer <token>.
// Gesperrte Tokens (Logout, Refresh-Rotation) werden über Redis
// abgewiesen; ohne Redis entfällt diese Prüfung.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "Authentifizierung erforderlich")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "Ungültiger Authorization-Header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token ungültig oder abgelaufen")
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "Ungültiger Token-Typ")
			c.Abort()
			return
		}

		if rdb != nil {
			if revoked, err := rdb.IsTokenBlacklisted(c.Request.Context(), claims.ID); err == nil && revoked {
				response.Unauthorized(c, 10002, "Token wurde gesperrt")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("class_id", claims.ClassID)
		c.Set("teacher_id", claims.TeacherID)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth lässt nur die angegebenen Rollen durch
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "Nicht authentifiziert")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "Keine Berechtigung")
		c.Abort()
	}
}
