package ports

import (
	"context"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

type CreateBreedInput struct {
	Name        string
	Description string
}

// UpdateBreedInput is a partial update; nil fields are left untouched.
type UpdateBreedInput struct {
	ID          uint
	Name        *string
	Description *string
}

// BreedService has no ownership dimension: breeds are shared reference
// data and mutations are gated to admins at the route level.
type BreedService interface {
	Create(ctx context.Context, in CreateBreedInput) (*domain.Breed, error)
	List(ctx context.Context, page, limit int) ([]*domain.Breed, int64, error)
	Get(ctx context.Context, id uint) (*domain.Breed, error)
	Update(ctx context.Context, in UpdateBreedInput) (*domain.Breed, error)
	Delete(ctx context.Context, id uint) error
}
