package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/service"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// ClassHandler HTTP-Handler für Klassen und Zugangscodes
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler erzeugt den ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// CreateClass legt eine Klasse mit Zugangscodes an
// POST /api/v1/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	detail, err := h.classSvc.CreateClass(c.Request.Context(), teacherID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVariant):
			response.BadRequest(c, 12001, "Unbekannte Lehrplan-Variante")
		case errors.Is(err, service.ErrClassTooLarge):
			response.BadRequest(c, 12002, "Klassengrösse übersteigt den Pseudonym-Pool")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, detail)
}

// ListClasses listet die eigenen Klassen
// GET /api/v1/classes
func (h *ClassHandler) ListClasses(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	classes, err := h.classSvc.ListClasses(c.Request.Context(), teacherID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, classes)
}

// GetClassDetail liefert eine Klasse mit allen Codes
// GET /api/v1/classes/:id
func (h *ClassHandler) GetClassDetail(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	detail, err := h.classSvc.GetClassDetail(c.Request.Context(), teacherID, c.Param("id"))
	if err != nil {
		handleClassError(c, err)
		return
	}

	response.OK(c, detail)
}

func handleClassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 12003, "Klasse nicht gefunden")
	case errors.Is(err, service.ErrNotClassOwner):
		response.Forbidden(c, 12004, "Klasse gehört einer anderen Lehrperson")
	default:
		response.InternalError(c)
	}
}
