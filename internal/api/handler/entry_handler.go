package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/internal/dto"
	"github.com/antrhizom/stud-i-agency-check/internal/service"
	"github.com/antrhizom/stud-i-agency-check/pkg/response"
)

// EntryHandler HTTP-Handler für Übungseinträge
type EntryHandler struct {
	entrySvc service.EntryService
}

// NewEntryHandler erzeugt den EntryHandler
func NewEntryHandler(entrySvc service.EntryService) *EntryHandler {
	return &EntryHandler{entrySvc: entrySvc}
}

// CreateEntry legt einen Übungseintrag an
// POST /api/v1/entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	entry, err := h.entrySvc.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, 400, 13001, "Eintrag abgelehnt", verr.Error())
		case errors.Is(err, service.ErrNoClass):
			response.BadRequest(c, 13002, "Benutzer gehört keiner Klasse an")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, entry)
}

// ListOwn listet die eigenen Einträge, neuste zuerst
// GET /api/v1/entries
func (h *EntryHandler) ListOwn(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.entrySvc.ListOwn(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, entries)
}

// DeleteEntry löscht einen eigenen Eintrag (nur eba)
// DELETE /api/v1/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.entrySvc.DeleteEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			response.NotFound(c, 13003, "Eintrag nicht gefunden")
		case errors.Is(err, service.ErrNotEntryOwner):
			response.Forbidden(c, 13004, "Eintrag gehört einer anderen Person")
		case errors.Is(err, service.ErrEntryImmutable):
			response.Forbidden(c, 13005, "Einträge dieser Variante sind unveränderlich")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// ListForLearner listet die Einträge eines Lernenden der eigenen Klasse
// GET /api/v1/learners/:id/entries
func (h *EntryHandler) ListForLearner(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.entrySvc.ListForLearner(c.Request.Context(), teacherID, c.Param("id"))
	if err != nil {
		handleScopeError(c, err)
		return
	}

	response.OK(c, entries)
}

// SetTeacherNote setzt oder löscht die Notiz an einem Eintrag
// PUT /api/v1/entries/:id/note
func (h *EntryHandler) SetTeacherNote(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.TeacherNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Eingabe")
		return
	}

	entry, err := h.entrySvc.SetTeacherNote(c.Request.Context(), teacherID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			response.NotFound(c, 13003, "Eintrag nicht gefunden")
			return
		}
		handleScopeError(c, err)
		return
	}

	response.OK(c, entry)
}

func handleScopeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 13006, "Lernende:r nicht gefunden")
	case errors.Is(err, service.ErrLearnerNotInScope):
		response.Forbidden(c, 13007, "Lernende:r gehört nicht zu den eigenen Klassen")
	default:
		response.InternalError(c)
	}
}
