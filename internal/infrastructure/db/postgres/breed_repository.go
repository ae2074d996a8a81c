package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

type BreedRepository struct {
	db *gorm.DB
}

func NewBreedRepository(db *gorm.DB) *BreedRepository {
	return &BreedRepository{db: db}
}

func (r *BreedRepository) Create(ctx context.Context, b *domain.Breed) (*domain.Breed, error) {
	row := breedFromDomain(b)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrBreedExists
		}
		return nil, fmt.Errorf("insert breed: %w", err)
	}
	return row.toDomain(), nil
}

func (r *BreedRepository) FindByID(ctx context.Context, id uint) (*domain.Breed, error) {
	var row breedModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBreedNotFound
		}
		return nil, fmt.Errorf("find breed: %w", err)
	}
	return row.toDomain(), nil
}

func (r *BreedRepository) List(ctx context.Context, offset, limit int) ([]*domain.Breed, int64, error) {
	tx := r.db.WithContext(ctx).Model(&breedModel{}).Where("deleted_at IS NULL")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count breeds: %w", err)
	}

	var rows []breedModel
	if err := tx.Order("name").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list breeds: %w", err)
	}

	breeds := make([]*domain.Breed, 0, len(rows))
	for i := range rows {
		breeds = append(breeds, rows[i].toDomain())
	}
	return breeds, total, nil
}

func (r *BreedRepository) Update(ctx context.Context, b *domain.Breed) error {
	result := r.db.WithContext(ctx).
		Model(&breedModel{}).
		Where("id = ? AND deleted_at IS NULL", b.ID).
		Updates(map[string]any{
			"name":        b.Name,
			"description": b.Description,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrBreedExists
		}
		return fmt.Errorf("update breed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBreedNotFound
	}
	return nil
}

func (r *BreedRepository) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&breedModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return fmt.Errorf("soft-delete breed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBreedNotFound
	}
	return nil
}
