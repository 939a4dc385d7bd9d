package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/service"
	"kriah-trainer/backend/pkg/response"
)

// PreferenceHandler serves the plan-preference endpoints.
type PreferenceHandler struct {
	prefSvc service.PreferenceService
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(prefSvc service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefSvc: prefSvc}
}

// Get returns the caller's preferences.
// GET /api/v1/preferences
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.prefSvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Update edits the caller's preferences.
// PUT /api/v1/preferences
func (h *PreferenceHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.prefSvc.Update(c.Request.Context(), userID, &req)
	if err != nil {
		writePreferenceError(c, err)
		return
	}
	response.OK(c, result)
}

// GetForUser returns another user's preferences. Members may only read their
// own; admins may read anyone's.
// GET /api/v1/users/:id/preferences
func (h *PreferenceHandler) GetForUser(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.prefSvc.GetForUser(c.Request.Context(), actorID, actorRole, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			response.Forbidden(c, 10003, "insufficient permissions")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateForUser edits another user's preferences.
// PUT /api/v1/users/:id/preferences
func (h *PreferenceHandler) UpdateForUser(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.prefSvc.UpdateForUser(c.Request.Context(), actorID, actorRole, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			response.Forbidden(c, 10003, "insufficient permissions")
			return
		}
		writePreferenceError(c, err)
		return
	}
	response.OK(c, result)
}

func writePreferenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPlanWeeks):
		response.BadRequest(c, 13001, "plan length must be 8, 12 or 16 weeks")
	case errors.Is(err, service.ErrContradictoryOverride):
		response.BadRequest(c, 13002, "siddur minutes cannot exceed daily minutes")
	default:
		response.InternalError(c)
	}
}
