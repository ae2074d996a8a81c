package ports

import (
	"context"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// RegisterInput carries the data for creating a new account.
// Actor is nil for anonymous registration; only an admin actor may set
// Role to admin.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Actor    *domain.Principal
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile resolves the current principal back to its user record.
	Profile(ctx context.Context, p domain.Principal) (*domain.User, error)
}
