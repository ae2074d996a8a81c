package ports

import (
	"context"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// UpdateUserInput is a partial update; nil fields are left untouched.
// Role changes require an admin principal regardless of ownership.
type UpdateUserInput struct {
	ID        uint
	Principal domain.Principal
	Name      *string
	Password  *string
	Role      *string
}

type UserService interface {
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	// Get retrieves a user by ID. includeDeleted skips the soft-delete
	// filter and is honoured only for admin principals by the handler.
	Get(ctx context.Context, id uint, includeDeleted bool) (*domain.User, error)
	Update(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uint, p domain.Principal) error
}
