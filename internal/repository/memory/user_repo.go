// Package memory holds map-backed repository implementations. They are safe
// for concurrent use and are primarily intended for tests and local
// development without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
	order []uuid.UUID
}

var _ repository.UserRepository = (*UserRepo)(nil)

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, repository.ErrConflict
		}
	}

	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)

	created := *user
	return &created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// List returns users in insertion order.
func (r *UserRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []domain.User
	for i := skip; i < len(r.order) && len(users) < limit; i++ {
		users = append(users, r.users[r.order[i]])
	}
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil, nil
	}

	r.users[user.ID] = *user
	updated := *user
	return &updated, nil
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}

	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
