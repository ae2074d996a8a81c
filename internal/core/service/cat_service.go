package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// CatService implements cat CRUD. The ownership policy gates every
// mutation after the row is fetched and before it is written back.
type CatService struct {
	cats   ports.CatRepository
	breeds ports.BreedRepository
	logger zerolog.Logger
}

func NewCatService(cats ports.CatRepository, breeds ports.BreedRepository, logger zerolog.Logger) *CatService {
	return &CatService{cats: cats, breeds: breeds, logger: logger}
}

func (s *CatService) Create(ctx context.Context, in ports.CreateCatInput) (*domain.Cat, error) {
	if _, err := s.breeds.FindByID(ctx, in.BreedID); err != nil {
		return nil, err
	}

	cat := &domain.Cat{
		Name:       in.Name,
		Age:        in.Age,
		Sex:        in.Sex,
		BreedID:    in.BreedID,
		OwnerEmail: in.Principal.Email,
	}

	created, err := s.cats.Create(ctx, cat)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("cat_id", created.ID).Str("owner", created.OwnerEmail).Msg("cat created")
	return created, nil
}

func (s *CatService) List(ctx context.Context, page, limit int) ([]*domain.Cat, int64, error) {
	_, limit, offset := normalizePage(page, limit)
	return s.cats.List(ctx, offset, limit)
}

func (s *CatService) Get(ctx context.Context, id uint) (*domain.Cat, error) {
	return s.cats.FindByID(ctx, id)
}

func (s *CatService) Update(ctx context.Context, in ports.UpdateCatInput) (*domain.Cat, error) {
	cat, err := s.cats.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !in.Principal.Owns(cat.OwnerEmail) {
		return nil, domain.ErrForbidden
	}

	if in.BreedID != nil {
		if _, err := s.breeds.FindByID(ctx, *in.BreedID); err != nil {
			return nil, err
		}
		cat.BreedID = *in.BreedID
	}
	if in.Name != nil {
		cat.Name = *in.Name
	}
	if in.Age != nil {
		cat.Age = *in.Age
	}
	if in.Sex != nil {
		cat.Sex = *in.Sex
	}

	if err := s.cats.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatService) Delete(ctx context.Context, id uint, p domain.Principal) error {
	cat, err := s.cats.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Owns(cat.OwnerEmail) {
		return domain.ErrForbidden
	}

	if err := s.cats.SoftDelete(ctx, cat.ID, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info().Uint("cat_id", cat.ID).Str("actor", p.Email).Msg("cat soft-deleted")
	return nil
}
