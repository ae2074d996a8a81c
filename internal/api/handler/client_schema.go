package handler

import "github.com/pawprint/cattery-api/internal/core/domain"

type createClientRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,min=7"`
}

// updateClientRequest is a partial update: absent fields stay untouched.
type updateClientRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,min=7"`
}

type clientListResponse struct {
	Data       []*domain.Client   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
