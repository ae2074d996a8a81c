package ports

import (
	"context"
	"time"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Read methods exclude soft-deleted rows unless stated otherwise.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID retrieves a user by primary key. When includeDeleted is true
	// the soft-delete filter is skipped (administrative lookup).
	FindByID(ctx context.Context, id uint, includeDeleted bool) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, int64, error)
	Update(ctx context.Context, u *domain.User) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

// CatRepository defines persistence operations for cats.
type CatRepository interface {
	Create(ctx context.Context, c *domain.Cat) (*domain.Cat, error)
	FindByID(ctx context.Context, id uint) (*domain.Cat, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Cat, int64, error)
	Update(ctx context.Context, c *domain.Cat) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

// BreedRepository defines persistence operations for breeds.
type BreedRepository interface {
	Create(ctx context.Context, b *domain.Breed) (*domain.Breed, error)
	FindByID(ctx context.Context, id uint) (*domain.Breed, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Breed, int64, error)
	Update(ctx context.Context, b *domain.Breed) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id uint) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Client, int64, error)
	Update(ctx context.Context, c *domain.Client) error
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}
