package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// UserService implements account administration. Ownership on a user row
// means the principal is that user; admin bypasses as everywhere else.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	_, limit, offset := normalizePage(page, limit)
	return s.users.List(ctx, offset, limit)
}

func (s *UserService) Get(ctx context.Context, id uint, includeDeleted bool) (*domain.User, error) {
	return s.users.FindByID(ctx, id, includeDeleted)
}

func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, in.ID, false)
	if err != nil {
		return nil, err
	}
	if !in.Principal.Owns(user.Email) {
		return nil, domain.ErrForbidden
	}
	// Role escalation is an admin-only operation even on one's own record.
	if in.Role != nil && in.Principal.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if !domain.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidCredentials
		}
		user.Role = *in.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint, p domain.Principal) error {
	user, err := s.users.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if !p.Owns(user.Email) {
		return domain.ErrForbidden
	}

	if err := s.users.SoftDelete(ctx, user.ID, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info().Uint("user_id", user.ID).Str("actor", p.Email).Msg("user soft-deleted")
	return nil
}
