package service

import (
	"context"
	"time"

	"github.com/pawprint/cattery-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := cloneUser(u)
	clone.ID = r.nextID
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.DeletedAt == nil {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint, includeDeleted bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || (u.DeletedAt != nil && !includeDeleted) {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, offset, limit int) ([]*domain.User, int64, error) {
	var all []*domain.User
	for id := uint(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok && u.DeletedAt == nil {
			all = append(all, cloneUser(u))
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	existing, ok := r.users[u.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uint, at time.Time) error {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.DeletedAt = &at
	return nil
}

type stubCatRepo struct {
	cats   map[uint]*domain.Cat
	nextID uint
}

func newStubCatRepo() *stubCatRepo {
	return &stubCatRepo{cats: make(map[uint]*domain.Cat)}
}

func cloneCat(c *domain.Cat) *domain.Cat {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCatRepo) Create(_ context.Context, c *domain.Cat) (*domain.Cat, error) {
	r.nextID++
	clone := cloneCat(c)
	clone.ID = r.nextID
	r.cats[clone.ID] = clone
	return cloneCat(clone), nil
}

func (r *stubCatRepo) FindByID(_ context.Context, id uint) (*domain.Cat, error) {
	c, ok := r.cats[id]
	if !ok || c.DeletedAt != nil {
		return nil, domain.ErrCatNotFound
	}
	return cloneCat(c), nil
}

func (r *stubCatRepo) List(_ context.Context, offset, limit int) ([]*domain.Cat, int64, error) {
	var all []*domain.Cat
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.cats[id]; ok && c.DeletedAt == nil {
			all = append(all, cloneCat(c))
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubCatRepo) Update(_ context.Context, c *domain.Cat) error {
	existing, ok := r.cats[c.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrCatNotFound
	}
	r.cats[c.ID] = cloneCat(c)
	return nil
}

func (r *stubCatRepo) SoftDelete(_ context.Context, id uint, at time.Time) error {
	c, ok := r.cats[id]
	if !ok || c.DeletedAt != nil {
		return domain.ErrCatNotFound
	}
	c.DeletedAt = &at
	return nil
}

type stubBreedRepo struct {
	breeds map[uint]*domain.Breed
	nextID uint
}

func newStubBreedRepo() *stubBreedRepo {
	return &stubBreedRepo{breeds: make(map[uint]*domain.Breed)}
}

func cloneBreed(b *domain.Breed) *domain.Breed {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBreedRepo) Create(_ context.Context, b *domain.Breed) (*domain.Breed, error) {
	for _, existing := range r.breeds {
		if existing.Name == b.Name && existing.DeletedAt == nil {
			return nil, domain.ErrBreedExists
		}
	}
	r.nextID++
	clone := cloneBreed(b)
	clone.ID = r.nextID
	r.breeds[clone.ID] = clone
	return cloneBreed(clone), nil
}

func (r *stubBreedRepo) FindByID(_ context.Context, id uint) (*domain.Breed, error) {
	b, ok := r.breeds[id]
	if !ok || b.DeletedAt != nil {
		return nil, domain.ErrBreedNotFound
	}
	return cloneBreed(b), nil
}

func (r *stubBreedRepo) List(_ context.Context, offset, limit int) ([]*domain.Breed, int64, error) {
	var all []*domain.Breed
	for id := uint(1); id <= r.nextID; id++ {
		if b, ok := r.breeds[id]; ok && b.DeletedAt == nil {
			all = append(all, cloneBreed(b))
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubBreedRepo) Update(_ context.Context, b *domain.Breed) error {
	existing, ok := r.breeds[b.ID]
	if !ok || existing.DeletedAt != nil {
		return domain.ErrBreedNotFound
	}
	r.breeds[b.ID] = cloneBreed(b)
	return nil
}

func (r *stubBreedRepo) SoftDelete(_ context.Context, id uint, at time.Time) error {
	b, ok := r.breeds[id]
	if !ok || b.DeletedAt != nil {
		return domain.ErrBreedNotFound
	}
	b.DeletedAt = &at
	return nil
}

// stubThrottle denies once the failure count reaches max.
type stubThrottle struct {
	failures map[string]int
	max      int
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), max: max}
}

func (t *stubThrottle) Allow(_ context.Context, email string) (bool, error) {
	return t.failures[email] < t.max, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
