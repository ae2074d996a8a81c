package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

type CatRepository struct {
	db *gorm.DB
}

func NewCatRepository(db *gorm.DB) *CatRepository {
	return &CatRepository{db: db}
}

func (r *CatRepository) Create(ctx context.Context, c *domain.Cat) (*domain.Cat, error) {
	row := catFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert cat: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CatRepository) FindByID(ctx context.Context, id uint) (*domain.Cat, error) {
	var row catModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("find cat: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CatRepository) List(ctx context.Context, offset, limit int) ([]*domain.Cat, int64, error) {
	tx := r.db.WithContext(ctx).Model(&catModel{}).Where("deleted_at IS NULL")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count cats: %w", err)
	}

	var rows []catModel
	if err := tx.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list cats: %w", err)
	}

	cats := make([]*domain.Cat, 0, len(rows))
	for i := range rows {
		cats = append(cats, rows[i].toDomain())
	}
	return cats, total, nil
}

func (r *CatRepository) Update(ctx context.Context, c *domain.Cat) error {
	result := r.db.WithContext(ctx).
		Model(&catModel{}).
		Where("id = ? AND deleted_at IS NULL", c.ID).
		Updates(map[string]any{
			"name":     c.Name,
			"age":      c.Age,
			"sex":      c.Sex,
			"breed_id": c.BreedID,
		})
	if result.Error != nil {
		return fmt.Errorf("update cat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCatNotFound
	}
	return nil
}

func (r *CatRepository) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&catModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return fmt.Errorf("soft-delete cat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCatNotFound
	}
	return nil
}
