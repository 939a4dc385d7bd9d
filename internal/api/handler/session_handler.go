package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/service"
	"kriah-trainer/backend/pkg/response"
)

// SessionHandler serves the practice session endpoints.
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Complete logs a finished practice session.
// POST /api/v1/sessions/complete
func (h *SessionHandler) Complete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.sessionSvc.Complete(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMode) {
			response.BadRequest(c, 12001, "unknown practice mode")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List returns the caller's session history, optionally filtered by mode.
// GET /api/v1/sessions?mode=xxx
func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SessionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	result, err := h.sessionSvc.List(c.Request.Context(), userID, req.Mode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMode) {
			response.BadRequest(c, 12001, "unknown practice mode")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListForUser returns another user's session history. Members may only read
// their own; admins may read anyone's.
// GET /api/v1/users/:id/sessions?mode=xxx
func (h *SessionHandler) ListForUser(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.SessionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	result, err := h.sessionSvc.ListForUser(c.Request.Context(), actorID, actorRole, c.Param("id"), req.Mode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, 10003, "insufficient permissions")
		case errors.Is(err, service.ErrInvalidMode):
			response.BadRequest(c, 12001, "unknown practice mode")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete removes one session.
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), userID, role, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, 12002, "session not found")
		case errors.Is(err, service.ErrNotSessionOwner):
			response.Forbidden(c, 12003, "session belongs to another user")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// DeleteByMode clears the caller's whole history for one mode.
// DELETE /api/v1/sessions/mode/:mode
func (h *SessionHandler) DeleteByMode(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	deleted, err := h.sessionSvc.DeleteByMode(c.Request.Context(), userID, c.Param("mode"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidMode) {
			response.BadRequest(c, 12001, "unknown practice mode")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"deleted": deleted})
}

// UploadRecording attaches an audio recording to a session.
// POST /api/v1/sessions/:id/recording
func (h *SessionHandler) UploadRecording(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("recording")
	if err != nil {
		response.BadRequest(c, 10001, "missing recording file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer src.Close()

	result, err := h.sessionSvc.SaveRecording(c.Request.Context(), userID, c.Param("id"), src, file.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, 12002, "session not found")
		case errors.Is(err, service.ErrNotSessionOwner):
			response.Forbidden(c, 12003, "session belongs to another user")
		case errors.Is(err, service.ErrRecordingTooBig):
			response.Error(c, http.StatusRequestEntityTooLarge, 12004, "recording exceeds the size limit")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Stats returns the caller's aggregate counters.
// GET /api/v1/sessions/stats
func (h *SessionHandler) Stats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.Stats(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Dashboard returns the main dashboard view.
// GET /api/v1/dashboard
func (h *SessionHandler) Dashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CorrectMinutes is an administrative minutes fix-up.
// PUT /api/v1/sessions/:id/minutes
func (h *SessionHandler) CorrectMinutes(c *gin.Context) {
	var req dto.CorrectSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.sessionSvc.CorrectMinutes(c.Request.Context(), c.Param("id"), req.Minutes)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, 12002, "session not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
