package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dbrajkovic/chirp/internal/domain"
)

const tweetColumns = "id, content, user_id, created_at, likes_count, retweets_count"

type TweetRepo struct {
	pool *pgxpool.Pool
}

func NewTweetRepo(pool *pgxpool.Pool) *TweetRepo {
	return &TweetRepo{pool: pool}
}

func (r *TweetRepo) Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	query := `
		INSERT INTO tweets (id, content, user_id, created_at, likes_count, retweets_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + tweetColumns

	return r.scanTweet(ctx, query,
		tweet.ID, tweet.Content, tweet.UserID,
		tweet.CreatedAt, tweet.LikesCount, tweet.RetweetsCount,
	)
}

func (r *TweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	return r.scanTweet(ctx, "SELECT "+tweetColumns+" FROM tweets WHERE id = $1", id)
}

func (r *TweetRepo) List(ctx context.Context, skip, limit int) ([]domain.Tweet, error) {
	query := "SELECT " + tweetColumns + " FROM tweets ORDER BY created_at OFFSET $1 LIMIT $2"
	return r.listTweets(ctx, query, skip, limit)
}

func (r *TweetRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Tweet, error) {
	query := "SELECT " + tweetColumns + " FROM tweets WHERE user_id = $1 ORDER BY created_at OFFSET $2 LIMIT $3"
	return r.listTweets(ctx, query, userID, skip, limit)
}

// Update overwrites every column from the in-memory entity.
func (r *TweetRepo) Update(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	query := `
		UPDATE tweets
		SET content = $1, user_id = $2, created_at = $3, likes_count = $4, retweets_count = $5
		WHERE id = $6
		RETURNING ` + tweetColumns

	return r.scanTweet(ctx, query,
		tweet.Content, tweet.UserID, tweet.CreatedAt,
		tweet.LikesCount, tweet.RetweetsCount, tweet.ID,
	)
}

func (r *TweetRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TweetRepo) listTweets(ctx context.Context, query string, args ...any) ([]domain.Tweet, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.Content, &t.UserID, &t.CreatedAt, &t.LikesCount, &t.RetweetsCount); err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

func (r *TweetRepo) scanTweet(ctx context.Context, query string, args ...any) (*domain.Tweet, error) {
	var t domain.Tweet
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Content, &t.UserID,
		&t.CreatedAt, &t.LikesCount, &t.RetweetsCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
