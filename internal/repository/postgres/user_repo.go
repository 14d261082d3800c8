package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository"
)

const userColumns = "id, username, email, full_name, bio, created_at, followers_count, following_count"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, username, email, full_name, bio, created_at, followers_count, following_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := r.scanUser(ctx, query,
		user.ID, user.Username, user.Email, user.FullName,
		user.Bio, user.CreatedAt, user.FollowersCount, user.FollowingCount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, repository.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *UserRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at OFFSET $1 LIMIT $2"

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio, &u.CreatedAt, &u.FollowersCount, &u.FollowingCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update overwrites every column from the in-memory entity. Callers merge
// partial updates into a full entity before calling.
func (r *UserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET username = $1, email = $2, full_name = $3, bio = $4, created_at = $5, followers_count = $6, following_count = $7
		WHERE id = $8
		RETURNING ` + userColumns

	return r.scanUser(ctx, query,
		user.Username, user.Email, user.FullName, user.Bio,
		user.CreatedAt, user.FollowersCount, user.FollowingCount, user.ID,
	)
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepo) scanUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName,
		&u.Bio, &u.CreatedAt, &u.FollowersCount, &u.FollowingCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
