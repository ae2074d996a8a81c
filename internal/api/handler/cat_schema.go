package handler

import "github.com/pawprint/cattery-api/internal/core/domain"

type createCatRequest struct {
	Name    string `json:"name"     validate:"required"`
	Age     int    `json:"age"      validate:"gte=0"`
	Sex     string `json:"sex"      validate:"required,oneof=male female"`
	BreedID uint   `json:"breed_id" validate:"required"`
}

// updateCatRequest is a partial update: absent fields stay untouched.
type updateCatRequest struct {
	Name    *string `json:"name"     validate:"omitempty,min=1"`
	Age     *int    `json:"age"      validate:"omitempty,gte=0"`
	Sex     *string `json:"sex"      validate:"omitempty,oneof=male female"`
	BreedID *uint   `json:"breed_id" validate:"omitempty,gt=0"`
}

type catListResponse struct {
	Data       []*domain.Cat      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
