package handler

import "github.com/pawprint/cattery-api/internal/core/domain"

type createBreedRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// updateBreedRequest is a partial update: absent fields stay untouched.
type updateBreedRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type breedListResponse struct {
	Data       []*domain.Breed    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
