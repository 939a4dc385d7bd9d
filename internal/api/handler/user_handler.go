package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"kriah-trainer/backend/internal/dto"
	"kriah-trainer/backend/internal/service"
	"kriah-trainer/backend/pkg/response"
)

// UserHandler serves the user administration endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers lists every account.
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetUser fetches one account.
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	result, err := h.userSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateUser edits a profile; admin or the account owner.
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	actorRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.userSvc.Update(c.Request.Context(), actorID, actorRole, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			response.Forbidden(c, 10003, "insufficient permissions")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "user not found")
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, 11002, "email is already registered")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// DeleteUser removes an account and everything attached to it.
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// AssignRole changes an account's role.
// PUT /api/v1/users/:id/role
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.userSvc.AssignRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11004, "user not found")
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, 11006, "unknown role")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
