package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	row := clientFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*domain.Client, error) {
	var row clientModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, offset, limit int) ([]*domain.Client, int64, error) {
	tx := r.db.WithContext(ctx).Model(&clientModel{}).Where("deleted_at IS NULL")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	var rows []clientModel
	if err := tx.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}

	clients := make([]*domain.Client, 0, len(rows))
	for i := range rows {
		clients = append(clients, rows[i].toDomain())
	}
	return clients, total, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	result := r.db.WithContext(ctx).
		Model(&clientModel{}).
		Where("id = ? AND deleted_at IS NULL", c.ID).
		Updates(map[string]any{
			"name":  c.Name,
			"email": c.Email,
			"phone": c.Phone,
		})
	if result.Error != nil {
		return fmt.Errorf("update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&clientModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return fmt.Errorf("soft-delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
