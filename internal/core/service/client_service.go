package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// ClientService implements client CRUD with the same ownership gate as cats.
type ClientService struct {
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		OwnerEmail: in.Principal.Email,
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("client_id", created.ID).Str("owner", created.OwnerEmail).Msg("client created")
	return created, nil
}

func (s *ClientService) List(ctx context.Context, page, limit int) ([]*domain.Client, int64, error) {
	_, limit, offset := normalizePage(page, limit)
	return s.clients.List(ctx, offset, limit)
}

func (s *ClientService) Get(ctx context.Context, id uint) (*domain.Client, error) {
	return s.clients.FindByID(ctx, id)
}

func (s *ClientService) Update(ctx context.Context, in ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !in.Principal.Owns(client.OwnerEmail) {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id uint, p domain.Principal) error {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Owns(client.OwnerEmail) {
		return domain.ErrForbidden
	}

	if err := s.clients.SoftDelete(ctx, client.ID, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info().Uint("client_id", client.ID).Str("actor", p.Email).Msg("client soft-deleted")
	return nil
}
