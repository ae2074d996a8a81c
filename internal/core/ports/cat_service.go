package ports

import (
	"context"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// CreateCatInput carries the data to register a cat. The owner is always
// the acting principal.
type CreateCatInput struct {
	Principal domain.Principal
	Name      string
	Age       int
	Sex       string
	BreedID   uint
}

// UpdateCatInput is a partial update; nil fields are left untouched.
type UpdateCatInput struct {
	ID        uint
	Principal domain.Principal
	Name      *string
	Age       *int
	Sex       *string
	BreedID   *uint
}

type CatService interface {
	Create(ctx context.Context, in CreateCatInput) (*domain.Cat, error)
	List(ctx context.Context, page, limit int) ([]*domain.Cat, int64, error)
	Get(ctx context.Context, id uint) (*domain.Cat, error)
	Update(ctx context.Context, in UpdateCatInput) (*domain.Cat, error)
	Delete(ctx context.Context, id uint, p domain.Principal) error
}
