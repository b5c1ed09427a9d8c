package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// MustGetUserID liest user_id aus dem Gin-Kontext. Fehlt der Wert,
// wird 401 geschrieben; Aufrufende sollen bei ok=false direkt returnen.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "Nicht authentifiziert")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "Nicht authentifiziert")
		return "", false
	}
	return s, true
}

// MustGetClaims liest die vollständigen Token-Claims aus dem Gin-Kontext
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "Nicht authentifiziert")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "Nicht authentifiziert")
		return nil, false
	}
	return claims, true
}
