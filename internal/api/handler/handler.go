package handler

import "github.com/antrhizom/stud-i-agency-check/internal/service"

// Handler Sammeleinstieg für alle HTTP-Handler
type Handler struct {
	Auth       *AuthHandler
	Curriculum *CurriculumHandler
	Class      *ClassHandler
	Entry      *EntryHandler
	Progress   *ProgressHandler
	Export     *ExportHandler
}

// NewHandler erzeugt das Handler-Aggregat
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Curriculum: NewCurriculumHandler(),
		Class:      NewClassHandler(svc.Class),
		Entry:      NewEntryHandler(svc.Entry),
		Progress:   NewProgressHandler(svc.Progress),
		Export:     NewExportHandler(svc.Export),
	}
}
