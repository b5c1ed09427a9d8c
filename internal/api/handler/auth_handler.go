package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/service"
	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// AuthHandler HTTP-Handler für Registrierung und Login
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler erzeugt den AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RegisterTeacher registriert eine Lehrperson
// POST /api/v1/auth/register
func (h *AuthHandler) RegisterTeacher(c *gin.Context) {
	var req dto.RegisterTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	user, err := h.authSvc.RegisterTeacher(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, 11002, "E-Mail-Adresse bereits registriert")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// LoginTeacher Login per E-Mail und Passwort
// POST /api/v1/auth/login
func (h *AuthHandler) LoginTeacher(c *gin.Context) {
	var req dto.TeacherLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	result, err := h.authSvc.LoginTeacher(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "E-Mail oder Passwort falsch")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// LoginWithCode anonymer Login per Zugangscode
// POST /api/v1/auth/code
func (h *AuthHandler) LoginWithCode(c *gin.Context) {
	var req dto.CodeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	result, err := h.authSvc.LoginWithCode(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			response.Error(c, http.StatusUnauthorized, 11003, "Zugangscode ungültig")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Refresh erneuert das Token-Paar
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenInvalid),
			errors.Is(err, service.ErrTokenRevoked), errors.Is(err, service.ErrUserNotFound):
			response.Unauthorized(c, 11004, "Refresh-Token ungültig")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout sperrt Access- und Refresh-Token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	// Refresh-Token im Body ist optional
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.authSvc.Logout(c.Request.Context(), claims, req.RefreshToken); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me liefert das eigene Profil
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11005, "Benutzer nicht gefunden")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
