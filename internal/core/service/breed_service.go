package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// BreedService implements breed CRUD. Mutations are admin-only, enforced
// at the route level; there is no per-row ownership on reference data.
type BreedService struct {
	breeds ports.BreedRepository
	logger zerolog.Logger
}

func NewBreedService(breeds ports.BreedRepository, logger zerolog.Logger) *BreedService {
	return &BreedService{breeds: breeds, logger: logger}
}

func (s *BreedService) Create(ctx context.Context, in ports.CreateBreedInput) (*domain.Breed, error) {
	breed := &domain.Breed{Name: in.Name, Description: in.Description}
	created, err := s.breeds.Create(ctx, breed)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("breed_id", created.ID).Str("name", created.Name).Msg("breed created")
	return created, nil
}

func (s *BreedService) List(ctx context.Context, page, limit int) ([]*domain.Breed, int64, error) {
	_, limit, offset := normalizePage(page, limit)
	return s.breeds.List(ctx, offset, limit)
}

func (s *BreedService) Get(ctx context.Context, id uint) (*domain.Breed, error) {
	return s.breeds.FindByID(ctx, id)
}

func (s *BreedService) Update(ctx context.Context, in ports.UpdateBreedInput) (*domain.Breed, error) {
	breed, err := s.breeds.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		breed.Name = *in.Name
	}
	if in.Description != nil {
		breed.Description = *in.Description
	}

	if err := s.breeds.Update(ctx, breed); err != nil {
		return nil, err
	}
	return breed, nil
}

func (s *BreedService) Delete(ctx context.Context, id uint) error {
	breed, err := s.breeds.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.breeds.SoftDelete(ctx, breed.ID, time.Now().UTC())
}
