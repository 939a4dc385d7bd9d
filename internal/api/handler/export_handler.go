package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"kriah-trainer/backend/internal/service"
	"kriah-trainer/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar"
)

// ExportHandler serves the download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSessions downloads the caller's session history as a workbook.
// GET /api/v1/export/sessions
func (h *ExportHandler) ExportSessions(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportSessions(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrExportNoSessions) {
			response.NotFound(c, 14001, "no sessions to export")
			return
		}
		response.InternalError(c)
		return
	}

	writeDownload(c, filename, contentTypeXLSX, buf.Bytes())
}

// ExportWeekCalendar downloads the current plan week as a calendar.
// GET /api/v1/export/week.ics
func (h *ExportHandler) ExportWeekCalendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportWeekCalendar(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	writeDownload(c, filename, contentTypeICS, buf.Bytes())
}

func writeDownload(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
