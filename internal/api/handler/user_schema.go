package handler

import "github.com/pawprint/cattery-api/internal/core/domain"

// updateUserRequest is a partial update: absent fields stay untouched.
// Role changes are rejected by the service for non-admin principals.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type userListResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
