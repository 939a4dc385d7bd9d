package dto

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UpdateUserRequest edits a user; nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// AssignRoleRequest changes a user's role (admin only).
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member admin"`
}
