package postgres

import (
	"time"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// Soft delete is an explicit nullable timestamp plus a query-time filter
// in each repository, not gorm.DeletedAt: every read path applies
// "deleted_at IS NULL" itself so the convention is visible and the
// unfiltered administrative path stays available.

type userModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:120"`
	Email        string `gorm:"size:254;uniqueIndex"`
	PasswordHash string `gorm:"size:120"`
	Role         string `gorm:"size:16"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

func (userModel) TableName() string { return "users" }

type catModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:120"`
	Age        int
	Sex        string `gorm:"size:16"`
	BreedID    uint   `gorm:"index"`
	OwnerEmail string `gorm:"size:254;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`
}

func (catModel) TableName() string { return "cats" }

type breedModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:120;uniqueIndex"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

func (breedModel) TableName() string { return "breeds" }

type clientModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:120"`
	Email      string `gorm:"size:254"`
	Phone      string `gorm:"size:32"`
	OwnerEmail string `gorm:"size:254;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`
}

func (clientModel) TableName() string { return "clients" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

func userFromDomain(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		DeletedAt:    u.DeletedAt,
	}
}

func (m *catModel) toDomain() *domain.Cat {
	return &domain.Cat{
		ID:         m.ID,
		Name:       m.Name,
		Age:        m.Age,
		Sex:        m.Sex,
		BreedID:    m.BreedID,
		OwnerEmail: m.OwnerEmail,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  m.DeletedAt,
	}
}

func catFromDomain(c *domain.Cat) catModel {
	return catModel{
		ID:         c.ID,
		Name:       c.Name,
		Age:        c.Age,
		Sex:        c.Sex,
		BreedID:    c.BreedID,
		OwnerEmail: c.OwnerEmail,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		DeletedAt:  c.DeletedAt,
	}
}

func (m *breedModel) toDomain() *domain.Breed {
	return &domain.Breed{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

func breedFromDomain(b *domain.Breed) breedModel {
	return breedModel{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		DeletedAt:   b.DeletedAt,
	}
}

func (m *clientModel) toDomain() *domain.Client {
	return &domain.Client{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		OwnerEmail: m.OwnerEmail,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  m.DeletedAt,
	}
}

func clientFromDomain(c *domain.Client) clientModel {
	return clientModel{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		OwnerEmail: c.OwnerEmail,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		DeletedAt:  c.DeletedAt,
	}
}
