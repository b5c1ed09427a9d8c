package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/antrhizom/stud-i-agency-check/internal/service"
)

// ExportHandler HTTP-Handler für Datei-Exporte
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler erzeugt den ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// CodeSheetCSV lädt die Codeliste einer Klasse herunter
// GET /api/v1/classes/:id/export/codes
func (h *ExportHandler) CodeSheetCSV(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	file, err := h.exportSvc.CodeSheetCSV(c.Request.Context(), teacherID, c.Param("id"))
	if err != nil {
		handleClassError(c, err)
		return
	}

	writeDownload(c, file)
}

// ClassOverviewXLSX lädt die Fortschrittsübersicht einer Klasse herunter
// GET /api/v1/classes/:id/export/overview
func (h *ExportHandler) ClassOverviewXLSX(c *gin.Context) {
	teacherID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	file, err := h.exportSvc.ClassOverviewXLSX(c.Request.Context(), teacherID, c.Param("id"))
	if err != nil {
		handleClassError(c, err)
		return
	}

	writeDownload(c, file)
}

func writeDownload(c *gin.Context, file *service.ExportFile) {
	encodedFilename := url.QueryEscape(file.Filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
