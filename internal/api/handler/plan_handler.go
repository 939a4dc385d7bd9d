package handler

import (
	"github.com/gin-gonic/gin"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/service"
	"kriah-trainer/backend/pkg/response"
)

// PlanHandler serves the training-plan endpoints.
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// Guide returns the full training guide with per-week history.
// GET /api/v1/plan/guide
func (h *PlanHandler) Guide(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.planSvc.Guide(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Targets returns the final per-mode minute targets for the current week.
// GET /api/v1/plan/targets
func (h *PlanHandler) Targets(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	targets, pos, err := h.planSvc.Targets(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	out := make(map[string]int, len(targets))
	for mode, v := range targets {
		out[string(mode)] = v
	}
	response.OK(c, &dto.TargetsResponse{CurrentWeek: pos.Week, Targets: out})
}
