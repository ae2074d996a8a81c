package ports

import (
	"context"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

type CreateClientInput struct {
	Principal domain.Principal
	Name      string
	Email     string
	Phone     string
}

// UpdateClientInput is a partial update; nil fields are left untouched.
type UpdateClientInput struct {
	ID        uint
	Principal domain.Principal
	Name      *string
	Email     *string
	Phone     *string
}

type ClientService interface {
	Create(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	List(ctx context.Context, page, limit int) ([]*domain.Client, int64, error)
	Get(ctx context.Context, id uint) (*domain.Client, error)
	Update(ctx context.Context, in UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uint, p domain.Principal) error
}
