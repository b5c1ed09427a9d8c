package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/internal/service"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// ProgressHandler HTTP-Handler für Fortschritts- und Zirkularitätsansichten
type ProgressHandler struct {
	progressSvc service.ProgressService
}

// NewProgressHandler erzeugt den ProgressHandler
func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// OwnDashboard liefert die eigene Fortschrittsansicht
// GET /api/v1/progress/me
func (h *ProgressHandler) OwnDashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	dash, err := h.progressSvc.OwnDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoClass) {
			response.BadRequest(c, 14001, "Benutzer gehört keiner Klasse an")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dash)
}

// LearnerDashboard liefert die Fortschrittsansicht eines Lernenden
// GET /api/v1/learners/:id/progress
func (h *ProgressHandler) LearnerDashboard(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	dash, err := h.progressSvc.LearnerDashboard(c.Request.Context(), teacherID, c.Param("id"))
	if err != nil {
		handleScopeError(c, err)
		return
	}

	response.OK(c, dash)
}
