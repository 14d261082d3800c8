package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/internal/domain"
)

// ErrConflict is returned when a write violates a uniqueness constraint
// (duplicate username or email).
var ErrConflict = errors.New("unique constraint violation")

// Lookups return (nil, nil) when no row matches. Create and Update return
// the entity as re-read after the write. Delete reports whether a row was
// actually removed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	List(ctx context.Context, skip, limit int) ([]domain.Tweet, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Tweet, error)
	Update(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
